package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/types"
  "github.com/studyloop/studyloop-backend/internal/utils"
  "github.com/studyloop/studyloop-backend/internal/logger"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "studyloop", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Profile{},
    &types.StudyPlan{},
    &types.Assessment{},
    &types.Schedule{},
    &types.Task{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  constraints := []struct {
    model interface{}
    name  string
    stmt  string
  }{
    {
      model: &types.StudyPlan{},
      name:  "fk_study_plan_profile_id",
      stmt:  `ALTER TABLE "study_plan" ADD CONSTRAINT "fk_study_plan_profile_id" FOREIGN KEY ("profile_id") REFERENCES "profile"("id") ON DELETE CASCADE`,
    },
    {
      model: &types.Assessment{},
      name:  "fk_assessment_profile_id",
      stmt:  `ALTER TABLE "assessment" ADD CONSTRAINT "fk_assessment_profile_id" FOREIGN KEY ("profile_id") REFERENCES "profile"("id") ON DELETE CASCADE`,
    },
    {
      model: &types.Assessment{},
      name:  "fk_assessment_study_plan_id",
      stmt:  `ALTER TABLE "assessment" ADD CONSTRAINT "fk_assessment_study_plan_id" FOREIGN KEY ("study_plan_id") REFERENCES "study_plan"("id") ON DELETE CASCADE`,
    },
    {
      model: &types.Schedule{},
      name:  "fk_schedule_profile_id",
      stmt:  `ALTER TABLE "schedule" ADD CONSTRAINT "fk_schedule_profile_id" FOREIGN KEY ("profile_id") REFERENCES "profile"("id") ON DELETE CASCADE`,
    },
    {
      model: &types.Task{},
      name:  "fk_task_schedule_id",
      stmt:  `ALTER TABLE "task" ADD CONSTRAINT "fk_task_schedule_id" FOREIGN KEY ("schedule_id") REFERENCES "schedule"("id") ON DELETE CASCADE`,
    },
  }
  for _, c := range constraints {
    if s.db.Migrator().HasConstraint(c.model, c.name) {
      continue
    }
    if err := s.db.Exec(c.stmt).Error; err != nil {
      return fmt.Errorf("Failed to add %s: %w", c.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
