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

type StudyPlanRepo interface {
  Create(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) (*types.StudyPlan, error)
  GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.StudyPlan, error)
  GetByProfileID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.StudyPlan, error)
  FullDeleteByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error
}

type studyPlanRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStudyPlanRepo(db *gorm.DB, baseLog *logger.Logger) StudyPlanRepo {
  repoLog := baseLog.With("repo", "StudyPlanRepo")
  return &studyPlanRepo{db: db, log: repoLog}
}

func (r *studyPlanRepo) Create(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) (*types.StudyPlan, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(plan).Error; err != nil {
    return nil, err
  }
  return plan, nil
}

func (r *studyPlanRepo) GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.StudyPlan, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.StudyPlan
  if err := transaction.WithContext(ctx).
    Where("id = ?", planID).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, pkgerrors.ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}

func (r *studyPlanRepo) GetByProfileID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.StudyPlan, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  results := []*types.StudyPlan{}
  if err := transaction.WithContext(ctx).
    Where("profile_id = ?", profileID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *studyPlanRepo) FullDeleteByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", planID).
    Delete(&types.StudyPlan{})
  if result.Error != nil {
    return result.Error
  }
  if result.RowsAffected == 0 {
    return pkgerrors.ErrNotFound
  }
  return nil
}
