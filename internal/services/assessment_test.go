package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
	"github.com/studyloop/studyloop-backend/internal/repos"
	"github.com/studyloop/studyloop-backend/internal/types"
)

const providerQuizJSON = `{
  "title": "Go Fundamentals Quiz",
  "questions": [
    {
      "question": "What is the zero value of a slice?",
      "options": ["nil", "an empty slice", "a panic", "undefined"],
      "correctAnswerIndex": 0
    }
  ]
}`

func newAssessmentService(t *testing.T, db *gorm.DB, provider ContentProvider) AssessmentService {
	t.Helper()
	log := newTestLogger(t)
	return NewAssessmentService(db, log, provider, repos.NewStudyPlanRepo(db, log), repos.NewAssessmentRepo(db, log))
}

func seedPlan(t *testing.T, db *gorm.DB, profileID uuid.UUID) *types.StudyPlan {
	t.Helper()
	plan := &types.StudyPlan{
		ID:        uuid.New(),
		Title:     "Seeded Plan",
		Topics:    []byte(`["concurrency","channels"]`),
		Content:   []byte(`{"title":"Seeded Plan","weekly_plan":[]}`),
		ProfileID: profileID,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return plan
}

func TestGenerateQuiz_UsesPlanTopics(t *testing.T) {
	db := newTestDB(t)
	provider := &fakeProvider{response: "```json\n" + providerQuizJSON + "\n```"}
	svc := newAssessmentService(t, db, provider)
	profile := seedProfile(t, db)
	plan := seedPlan(t, db, profile.ID)

	quiz, err := svc.GenerateQuiz(context.Background(), plan.ID)
	if err != nil {
		t.Fatalf("generate quiz: %v", err)
	}
	if !bytes.Equal(quiz, []byte(providerQuizJSON)) {
		t.Fatalf("returned quiz is not the fence-stripped provider output")
	}
	if len(provider.prompts) != 1 {
		t.Fatalf("expected one provider call, got %d", len(provider.prompts))
	}
	if !strings.Contains(provider.prompts[0], "concurrency, channels") {
		t.Fatalf("prompt missing plan topics: %q", provider.prompts[0])
	}
}

func TestGenerateQuiz_UnknownPlanIsNotFound(t *testing.T) {
	db := newTestDB(t)
	provider := &fakeProvider{response: providerQuizJSON}
	svc := newAssessmentService(t, db, provider)

	_, err := svc.GenerateQuiz(context.Background(), uuid.New())
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(provider.prompts) != 0 {
		t.Fatalf("provider should not be called for an unknown plan")
	}
}

func TestGenerateQuiz_RejectsInvalidDocument(t *testing.T) {
	db := newTestDB(t)
	provider := &fakeProvider{response: `{"title": "empty", "questions": []}`}
	svc := newAssessmentService(t, db, provider)
	profile := seedProfile(t, db)
	plan := seedPlan(t, db, profile.ID)

	if _, err := svc.GenerateQuiz(context.Background(), plan.ID); err == nil {
		t.Fatalf("expected validation error for empty questions")
	}
}

func TestGenerateQuiz_PersistsNothing(t *testing.T) {
	db := newTestDB(t)
	provider := &fakeProvider{response: providerQuizJSON}
	svc := newAssessmentService(t, db, provider)
	profile := seedProfile(t, db)
	plan := seedPlan(t, db, profile.ID)

	if _, err := svc.GenerateQuiz(context.Background(), plan.ID); err != nil {
		t.Fatalf("generate quiz: %v", err)
	}
	var count int64
	if err := db.Model(&types.Assessment{}).Count(&count).Error; err != nil {
		t.Fatalf("count assessments: %v", err)
	}
	if count != 0 {
		t.Fatalf("quiz generation wrote %d assessment rows", count)
	}
}

func TestSubmitScore_StoresValueAsIs(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(t, db, &fakeProvider{})
	profile := seedProfile(t, db)
	plan := seedPlan(t, db, profile.ID)
	ctx := context.Background()

	// Scores are caller-computed; nothing clamps them to 0-100.
	for _, score := range []int{0, 70, 100, 150, -10} {
		created, err := svc.SubmitScore(ctx, profile.ID, plan.ID, score)
		if err != nil {
			t.Fatalf("submit score %d: %v", score, err)
		}
		if created.Score != score {
			t.Fatalf("score %d stored as %d", score, created.Score)
		}
	}
}

func TestSubmitScore_UnknownPlanFailsForeignKey(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(t, db, &fakeProvider{})
	profile := seedProfile(t, db)

	if _, err := svc.SubmitScore(context.Background(), profile.ID, uuid.New(), 50); err == nil {
		t.Fatalf("expected foreign key failure for unknown plan")
	}
}
