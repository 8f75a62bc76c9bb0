package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/normalization"
  pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
  "github.com/studyloop/studyloop-backend/internal/repos"
  "github.com/studyloop/studyloop-backend/internal/types"
)

type AuthService interface {
  RegisterUser(ctx context.Context, email, password, username string) (*IdentityUser, *types.Profile, error)
  LoginUser(ctx context.Context, email, password string) (*Session, error)
}

type authService struct {
  db          *gorm.DB
  log         *logger.Logger
  identity    IdentityProvider
  profileRepo repos.ProfileRepo
}

func NewAuthService(db *gorm.DB, log *logger.Logger, identity IdentityProvider, profileRepo repos.ProfileRepo) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:          db,
    log:         serviceLog,
    identity:    identity,
    profileRepo: profileRepo,
  }
}

// RegisterUser signs the account up with the identity provider first and
// only then writes the Profile row, keyed by the provider's subject. A
// duplicate email or username leaves no Profile behind.
func (as *authService) RegisterUser(ctx context.Context, email, password, username string) (*IdentityUser, *types.Profile, error) {
  email = normalization.ParseInputString(email)
  username = normalization.TrimInputString(username)

  emailExists, err := as.profileRepo.EmailExists(ctx, nil, email)
  if err != nil {
    return nil, nil, fmt.Errorf("Failed to check profile email: %w", err)
  }
  if emailExists {
    return nil, nil, pkgerrors.ErrConflict
  }
  usernameExists, err := as.profileRepo.UsernameExists(ctx, nil, username)
  if err != nil {
    return nil, nil, fmt.Errorf("Failed to check profile username: %w", err)
  }
  if usernameExists {
    return nil, nil, pkgerrors.ErrConflict
  }

  identityUser, err := as.identity.SignUp(ctx, email, password)
  if err != nil {
    return nil, nil, err
  }

  profile := &types.Profile{
    ID:       identityUser.ID,
    Email:    email,
    Username: username,
  }
  created, err := as.profileRepo.Create(ctx, nil, profile)
  if err != nil {
    as.log.Error("Failed to create profile after identity signup", "error", err, "identity_user_id", identityUser.ID)
    return nil, nil, fmt.Errorf("Failed to create profile: %w", err)
  }
  return identityUser, created, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (*Session, error) {
  email = normalization.ParseInputString(email)
  session, err := as.identity.SignInWithPassword(ctx, email, password)
  if err != nil {
    return nil, err
  }
  return session, nil
}
