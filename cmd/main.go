package main

import (
  "fmt"
  "os"
  "github.com/joho/godotenv"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/utils"
  "github.com/studyloop/studyloop-backend/internal/db"
  "github.com/studyloop/studyloop-backend/internal/repos"
  "github.com/studyloop/studyloop-backend/internal/services"
  "github.com/studyloop/studyloop-backend/internal/handlers"
  "github.com/studyloop/studyloop-backend/internal/middleware"
  "github.com/studyloop/studyloop-backend/internal/server"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  profileRepo := repos.NewProfileRepo(thePG, log)
  studyPlanRepo := repos.NewStudyPlanRepo(thePG, log)
  assessmentRepo := repos.NewAssessmentRepo(thePG, log)
  scheduleRepo := repos.NewScheduleRepo(thePG, log)
  taskRepo := repos.NewTaskRepo(thePG, log)

  // External clients
  log.Info("Setting up external clients from main...")
  identityClient, err := services.NewIdentityClient(log)
  if err != nil {
    log.Error("Could not init IdentityClient", "error", err)
    os.Exit(1)
  }
  geminiClient, err := services.NewGeminiClient(log)
  if err != nil {
    log.Error("Could not init GeminiClient", "error", err)
    os.Exit(1)
  }

  // Services
  log.Info("Setting up Services from main...")
  authService := services.NewAuthService(thePG, log, identityClient, profileRepo)
  profileService := services.NewProfileService(thePG, log, profileRepo)
  planService := services.NewPlanService(thePG, log, geminiClient, studyPlanRepo)
  assessmentService := services.NewAssessmentService(thePG, log, geminiClient, studyPlanRepo, assessmentRepo)
  scheduleService := services.NewScheduleService(thePG, log, scheduleRepo, taskRepo)
  performanceService := services.NewPerformanceService(thePG, log, profileRepo, studyPlanRepo, assessmentRepo)

  // Handlers
  log.Info("Setting up Handlers from main...")
  authHandler := handlers.NewAuthHandler(log, authService)
  profileHandler := handlers.NewProfileHandler(log, profileService)
  planHandler := handlers.NewPlanHandler(log, planService)
  assessmentHandler := handlers.NewAssessmentHandler(log, assessmentService, planService)
  scheduleHandler := handlers.NewScheduleHandler(log, scheduleService)
  taskHandler := handlers.NewTaskHandler(log, scheduleService)
  performanceHandler := handlers.NewPerformanceHandler(log, performanceService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, identityClient)

  // Router
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:        authHandler,
    AuthMiddleware:     authMiddleware,
    ProfileHandler:     profileHandler,
    PlanHandler:        planHandler,
    AssessmentHandler:  assessmentHandler,
    ScheduleHandler:    scheduleHandler,
    TaskHandler:        taskHandler,
    PerformanceHandler: performanceHandler,
  })

  port := utils.GetEnv("PORT", "3001", log)
  log.Info("Starting server", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server exited", "error", err)
  }
}
