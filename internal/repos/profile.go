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

type ProfileRepo interface {
  Create(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error)
  GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error)
  EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
  UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error)
}

type profileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
  repoLog := baseLog.With("repo", "ProfileRepo")
  return &profileRepo{db: db, log: repoLog}
}

func (r *profileRepo) Create(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(profile).Error; err != nil {
    return nil, err
  }
  return profile, nil
}

func (r *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Profile
  if err := transaction.WithContext(ctx).
    Where("id = ?", profileID).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, pkgerrors.ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}

func (r *profileRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Profile{}).
    Where("email = ?", email).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (r *profileRepo) UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Profile{}).
    Where("username = ?", username).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}
