package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/types"
)

type AssessmentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error)
  GetByProfileID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Assessment, error)
}

type assessmentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
  repoLog := baseLog.With("repo", "AssessmentRepo")
  return &assessmentRepo{db: db, log: repoLog}
}

func (r *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(assessment).Error; err != nil {
    return nil, err
  }
  return assessment, nil
}

// GetByProfileID orders ascending by creation time so score history charts
// read left to right.
func (r *assessmentRepo) GetByProfileID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Assessment, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  results := []*types.Assessment{}
  if err := transaction.WithContext(ctx).
    Where("profile_id = ?", profileID).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
