package services

import (
  "context"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/repos"
  "github.com/studyloop/studyloop-backend/internal/types"
)

type ScheduleService interface {
  GetOrCreate(ctx context.Context, profileID uuid.UUID, date time.Time) (*types.Schedule, error)
  GetSchedule(ctx context.Context, scheduleID uuid.UUID) (*types.Schedule, error)
  GetTask(ctx context.Context, taskID uuid.UUID) (*types.Task, error)
  AddTask(ctx context.Context, scheduleID uuid.UUID, title string) (*types.Task, error)
  SetTaskCompletion(ctx context.Context, taskID uuid.UUID, isCompleted bool) (*types.Task, error)
  DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

type scheduleService struct {
  db           *gorm.DB
  log          *logger.Logger
  scheduleRepo repos.ScheduleRepo
  taskRepo     repos.TaskRepo
}

func NewScheduleService(db *gorm.DB, log *logger.Logger, scheduleRepo repos.ScheduleRepo, taskRepo repos.TaskRepo) ScheduleService {
  serviceLog := log.With("service", "ScheduleService")
  return &scheduleService{
    db:           db,
    log:          serviceLog,
    scheduleRepo: scheduleRepo,
    taskRepo:     taskRepo,
  }
}

// NormalizeScheduleDate maps any instant to midnight UTC of its calendar
// day, so every timestamp within a day addresses the same schedule row.
func NormalizeScheduleDate(t time.Time) time.Time {
  t = t.UTC()
  return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GetOrCreate is the only absent->present transition a schedule has. The
// insert ignores conflicts on (profile_id, date), so calling it repeatedly,
// even concurrently, always converges on exactly one row per day.
func (s *scheduleService) GetOrCreate(ctx context.Context, profileID uuid.UUID, date time.Time) (*types.Schedule, error) {
  day := NormalizeScheduleDate(date)

  schedule := &types.Schedule{
    ID:        uuid.New(),
    ProfileID: profileID,
    Date:      day,
  }
  if err := s.scheduleRepo.CreateIfAbsent(ctx, nil, schedule); err != nil {
    return nil, fmt.Errorf("Failed to create schedule: %w", err)
  }

  found, err := s.scheduleRepo.GetByProfileAndDate(ctx, nil, profileID, day)
  if err != nil {
    return nil, fmt.Errorf("Failed to load schedule: %w", err)
  }
  return found, nil
}

// GetSchedule exposes the row without tasks, mainly so handlers can check
// the owner before mutating it.
func (s *scheduleService) GetSchedule(ctx context.Context, scheduleID uuid.UUID) (*types.Schedule, error) {
  return s.scheduleRepo.GetByID(ctx, nil, scheduleID)
}

func (s *scheduleService) GetTask(ctx context.Context, taskID uuid.UUID) (*types.Task, error) {
  return s.taskRepo.GetByID(ctx, nil, taskID)
}

func (s *scheduleService) AddTask(ctx context.Context, scheduleID uuid.UUID, title string) (*types.Task, error) {
  if _, err := s.scheduleRepo.GetByID(ctx, nil, scheduleID); err != nil {
    return nil, err
  }
  task := &types.Task{
    ID:         uuid.New(),
    ScheduleID: scheduleID,
    Title:      title,
  }
  created, err := s.taskRepo.Create(ctx, nil, task)
  if err != nil {
    return nil, fmt.Errorf("Failed to create task: %w", err)
  }
  return created, nil
}

func (s *scheduleService) SetTaskCompletion(ctx context.Context, taskID uuid.UUID, isCompleted bool) (*types.Task, error) {
  return s.taskRepo.SetCompletion(ctx, nil, taskID, isCompleted)
}

func (s *scheduleService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
  return s.taskRepo.FullDeleteByID(ctx, nil, taskID)
}
