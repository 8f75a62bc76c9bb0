package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
	"github.com/studyloop/studyloop-backend/internal/repos"
	"github.com/studyloop/studyloop-backend/internal/types"
)

func newPerformanceService(t *testing.T, db *gorm.DB) PerformanceService {
	t.Helper()
	log := newTestLogger(t)
	return NewPerformanceService(db, log,
		repos.NewProfileRepo(db, log),
		repos.NewStudyPlanRepo(db, log),
		repos.NewAssessmentRepo(db, log),
	)
}

func TestGetSummary_JoinsPlanTitles(t *testing.T) {
	db := newTestDB(t)
	svc := newPerformanceService(t, db)
	profile := seedProfile(t, db)
	ctx := context.Background()

	planA := seedPlan(t, db, profile.ID)
	planB := &types.StudyPlan{
		ID:        uuid.New(),
		Title:     "Second Plan",
		Topics:    []byte(`["testing"]`),
		Content:   []byte(`{"title":"Second Plan","weekly_plan":[]}`),
		ProfileID: profile.ID,
	}
	if err := db.Create(planB).Error; err != nil {
		t.Fatalf("seed second plan: %v", err)
	}

	for i, planID := range []uuid.UUID{planA.ID, planB.ID, planA.ID} {
		assessment := &types.Assessment{
			ID:          uuid.New(),
			Score:       60 + i*10,
			ProfileID:   profile.ID,
			StudyPlanID: planID,
		}
		if err := db.Create(assessment).Error; err != nil {
			t.Fatalf("seed assessment %d: %v", i, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	summary, err := svc.GetSummary(ctx, profile.ID)
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if summary.Profile == nil || summary.Profile.ID != profile.ID {
		t.Fatalf("summary missing profile")
	}
	if len(summary.Plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(summary.Plans))
	}
	if len(summary.Assessments) != 3 {
		t.Fatalf("expected 3 assessments, got %d", len(summary.Assessments))
	}

	// Oldest first, each carrying its plan's title.
	wantTitles := []string{planA.Title, planB.Title, planA.Title}
	wantScores := []int{60, 70, 80}
	for i, a := range summary.Assessments {
		if a.StudyPlan.Title != wantTitles[i] {
			t.Fatalf("assessment %d: title %q want %q", i, a.StudyPlan.Title, wantTitles[i])
		}
		if a.Score != wantScores[i] {
			t.Fatalf("assessment %d: score %d want %d", i, a.Score, wantScores[i])
		}
	}
}

func TestGetSummary_EmptyHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newPerformanceService(t, db)
	profile := seedProfile(t, db)

	summary, err := svc.GetSummary(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if summary.Plans == nil || len(summary.Plans) != 0 {
		t.Fatalf("plans should be an empty slice")
	}
	if summary.Assessments == nil || len(summary.Assessments) != 0 {
		t.Fatalf("assessments should be an empty slice")
	}
}

func TestGetSummary_UnknownProfileIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newPerformanceService(t, db)

	_, err := svc.GetSummary(context.Background(), uuid.New())
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
