package repos

import (
  "context"
  "errors"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/studyloop/studyloop-backend/internal/logger"
  pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
  "github.com/studyloop/studyloop-backend/internal/types"
)

type ScheduleRepo interface {
  CreateIfAbsent(ctx context.Context, tx *gorm.DB, schedule *types.Schedule) error
  GetByProfileAndDate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, date time.Time) (*types.Schedule, error)
  GetByID(ctx context.Context, tx *gorm.DB, scheduleID uuid.UUID) (*types.Schedule, error)
}

type scheduleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewScheduleRepo(db *gorm.DB, baseLog *logger.Logger) ScheduleRepo {
  repoLog := baseLog.With("repo", "ScheduleRepo")
  return &scheduleRepo{db: db, log: repoLog}
}

// CreateIfAbsent is a conflict-ignoring insert over the (profile_id, date)
// unique index, so concurrent callers for the same day converge on one row.
func (r *scheduleRepo) CreateIfAbsent(ctx context.Context, tx *gorm.DB, schedule *types.Schedule) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "profile_id"}, {Name: "date"}},
      DoNothing: true,
    }).
    Create(schedule).Error
}

func (r *scheduleRepo) GetByProfileAndDate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, date time.Time) (*types.Schedule, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Schedule
  if err := transaction.WithContext(ctx).
    Where("profile_id = ? AND date = ?", profileID, date).
    Preload("Tasks", func(db *gorm.DB) *gorm.DB {
      return db.Order("created_at ASC")
    }).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, pkgerrors.ErrNotFound
    }
    return nil, err
  }
  if result.Tasks == nil {
    result.Tasks = []*types.Task{}
  }
  return &result, nil
}

func (r *scheduleRepo) GetByID(ctx context.Context, tx *gorm.DB, scheduleID uuid.UUID) (*types.Schedule, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Schedule
  if err := transaction.WithContext(ctx).
    Where("id = ?", scheduleID).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, pkgerrors.ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}
