package services

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/repos"
  "github.com/studyloop/studyloop-backend/internal/types"
)

type ProfileService interface {
  GetByID(ctx context.Context, profileID uuid.UUID) (*types.Profile, error)
}

type profileService struct {
  db          *gorm.DB
  log         *logger.Logger
  profileRepo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
  serviceLog := log.With("service", "ProfileService")
  return &profileService{db: db, log: serviceLog, profileRepo: profileRepo}
}

func (s *profileService) GetByID(ctx context.Context, profileID uuid.UUID) (*types.Profile, error) {
  return s.profileRepo.GetByID(ctx, nil, profileID)
}
