package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/logger"
  pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
  "github.com/studyloop/studyloop-backend/internal/types"
)

type TaskRepo interface {
  Create(ctx context.Context, tx *gorm.DB, task *types.Task) (*types.Task, error)
  GetByID(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) (*types.Task, error)
  SetCompletion(ctx context.Context, tx *gorm.DB, taskID uuid.UUID, isCompleted bool) (*types.Task, error)
  FullDeleteByID(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error
}

type taskRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTaskRepo(db *gorm.DB, baseLog *logger.Logger) TaskRepo {
  repoLog := baseLog.With("repo", "TaskRepo")
  return &taskRepo{db: db, log: repoLog}
}

func (r *taskRepo) Create(ctx context.Context, tx *gorm.DB, task *types.Task) (*types.Task, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(task).Error; err != nil {
    return nil, err
  }
  return task, nil
}

func (r *taskRepo) GetByID(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) (*types.Task, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Task
  if err := transaction.WithContext(ctx).
    Where("id = ?", taskID).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, pkgerrors.ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}

// SetCompletion writes the flag unconditionally; applying the same value
// twice leaves the row unchanged.
func (r *taskRepo) SetCompletion(ctx context.Context, tx *gorm.DB, taskID uuid.UUID, isCompleted bool) (*types.Task, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  result := transaction.WithContext(ctx).
    Model(&types.Task{}).
    Where("id = ?", taskID).
    Update("is_completed", isCompleted)
  if result.Error != nil {
    return nil, result.Error
  }
  if result.RowsAffected == 0 {
    return nil, pkgerrors.ErrNotFound
  }
  return r.GetByID(ctx, transaction, taskID)
}

func (r *taskRepo) FullDeleteByID(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", taskID).
    Delete(&types.Task{})
  if result.Error != nil {
    return result.Error
  }
  if result.RowsAffected == 0 {
    return pkgerrors.ErrNotFound
  }
  return nil
}
