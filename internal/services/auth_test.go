package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
	"github.com/studyloop/studyloop-backend/internal/repos"
	"github.com/studyloop/studyloop-backend/internal/types"
)

type fakeIdentity struct {
	userID     uuid.UUID
	signUpErr  error
	signInErr  error
	signUps    int
	lastEmail  string
	session    *Session
	verifyID   uuid.UUID
	verifyMail string
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password string) (*IdentityUser, error) {
	f.signUps++
	f.lastEmail = email
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &IdentityUser{ID: f.userID, Email: email}, nil
}

func (f *fakeIdentity) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	f.lastEmail = email
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	if f.session != nil {
		return f.session, nil
	}
	return &Session{
		AccessToken: "test-token",
		TokenType:   "bearer",
		ExpiresIn:   3600,
		User:        &IdentityUser{ID: f.userID, Email: email},
	}, nil
}

func (f *fakeIdentity) VerifyAccessToken(tokenString string) (uuid.UUID, string, error) {
	if f.verifyID == uuid.Nil {
		return uuid.Nil, "", pkgerrors.ErrUnauthorized
	}
	return f.verifyID, f.verifyMail, nil
}

func newAuthService(t *testing.T, db *gorm.DB, identity IdentityProvider) AuthService {
	t.Helper()
	log := newTestLogger(t)
	return NewAuthService(db, log, identity, repos.NewProfileRepo(db, log))
}

func countProfiles(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&types.Profile{}).Count(&count).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	return count
}

func TestRegisterUser_ProfileKeyedByIdentitySubject(t *testing.T) {
	db := newTestDB(t)
	identity := &fakeIdentity{userID: uuid.New()}
	svc := newAuthService(t, db, identity)

	user, profile, err := svc.RegisterUser(context.Background(), "Bob@Example.com", "secret123", "bob")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if profile.ID != identity.userID {
		t.Fatalf("profile id %s is not the identity subject %s", profile.ID, identity.userID)
	}
	if user.ID != identity.userID {
		t.Fatalf("returned user id mismatch")
	}
	if profile.Email != "bob@example.com" {
		t.Fatalf("email not normalized: %q", profile.Email)
	}
	if identity.lastEmail != "bob@example.com" {
		t.Fatalf("identity provider saw unnormalized email %q", identity.lastEmail)
	}
}

func TestRegisterUser_DuplicateEmailIsConflict(t *testing.T) {
	db := newTestDB(t)
	identity := &fakeIdentity{userID: uuid.New()}
	svc := newAuthService(t, db, identity)
	ctx := context.Background()

	if _, _, err := svc.RegisterUser(ctx, "bob@example.com", "secret123", "bob"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, _, err := svc.RegisterUser(ctx, "BOB@example.com", "secret123", "bobby")
	if !errors.Is(err, pkgerrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if identity.signUps != 1 {
		t.Fatalf("duplicate email must not reach the identity provider")
	}
	if got := countProfiles(t, db); got != 1 {
		t.Fatalf("expected 1 profile, got %d", got)
	}
}

func TestRegisterUser_DuplicateUsernameIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, &fakeIdentity{userID: uuid.New()})
	ctx := context.Background()

	if _, _, err := svc.RegisterUser(ctx, "bob@example.com", "secret123", "bob"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.RegisterUser(ctx, "other@example.com", "secret123", "bob")
	if !errors.Is(err, pkgerrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestRegisterUser_IdentityFailureLeavesNoProfile(t *testing.T) {
	db := newTestDB(t)
	identity := &fakeIdentity{signUpErr: pkgerrors.ErrConflict}
	svc := newAuthService(t, db, identity)

	_, _, err := svc.RegisterUser(context.Background(), "bob@example.com", "secret123", "bob")
	if !errors.Is(err, pkgerrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if got := countProfiles(t, db); got != 0 {
		t.Fatalf("failed signup left %d profile rows", got)
	}
}

func TestLoginUser_ReturnsProviderSession(t *testing.T) {
	db := newTestDB(t)
	identity := &fakeIdentity{userID: uuid.New()}
	svc := newAuthService(t, db, identity)

	session, err := svc.LoginUser(context.Background(), "Bob@Example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.AccessToken != "test-token" {
		t.Fatalf("unexpected session token %q", session.AccessToken)
	}
	if identity.lastEmail != "bob@example.com" {
		t.Fatalf("login email not normalized: %q", identity.lastEmail)
	}
}

func TestLoginUser_BadCredentials(t *testing.T) {
	db := newTestDB(t)
	identity := &fakeIdentity{signInErr: pkgerrors.ErrUnauthorized}
	svc := newAuthService(t, db, identity)

	_, err := svc.LoginUser(context.Background(), "bob@example.com", "wrong")
	if !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
