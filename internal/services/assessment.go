package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/content"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/repos"
  "github.com/studyloop/studyloop-backend/internal/types"
)

type AssessmentService interface {
  GenerateQuiz(ctx context.Context, planID uuid.UUID) (json.RawMessage, error)
  SubmitScore(ctx context.Context, profileID, planID uuid.UUID, score int) (*types.Assessment, error)
}

type assessmentService struct {
  db             *gorm.DB
  log            *logger.Logger
  provider       ContentProvider
  planRepo       repos.StudyPlanRepo
  assessmentRepo repos.AssessmentRepo
}

func NewAssessmentService(db *gorm.DB, log *logger.Logger, provider ContentProvider, planRepo repos.StudyPlanRepo, assessmentRepo repos.AssessmentRepo) AssessmentService {
  serviceLog := log.With("service", "AssessmentService")
  return &assessmentService{
    db:             db,
    log:            serviceLog,
    provider:       provider,
    planRepo:       planRepo,
    assessmentRepo: assessmentRepo,
  }
}

func quizPrompt(topics []string) string {
  return fmt.Sprintf(`
You are an expert quiz creator. Based on the topics "%s", generate a 10-question multiple-choice quiz.
Return a valid JSON object only. Do not include any text or markdown formatting before or after the JSON.
The JSON object must have a "title" and a "questions" array.
Each object in the "questions" array must have a "question" (string), an "options" (array of 4 strings), and a "correctAnswerIndex" (number 0-3).
`, strings.Join(topics, ", "))
}

// GenerateQuiz builds a quiz from the plan's stored topics and returns the
// validated Quiz Document without persisting it; grading happens client
// side.
func (s *assessmentService) GenerateQuiz(ctx context.Context, planID uuid.UUID) (json.RawMessage, error) {
  plan, err := s.planRepo.GetByID(ctx, nil, planID)
  if err != nil {
    return nil, err
  }

  var topics []string
  if err := json.Unmarshal(plan.Topics, &topics); err != nil {
    return nil, fmt.Errorf("Failed to decode plan topics: %w", err)
  }

  raw, err := s.provider.GenerateContent(ctx, quizPrompt(topics))
  if err != nil {
    s.log.Error("Quiz generation call failed", "error", err, "plan_id", planID)
    return nil, fmt.Errorf("Failed to generate assessment: %w", err)
  }

  _, cleaned, err := content.ParseQuizDocument(raw)
  if err != nil {
    s.log.Error("Quiz document rejected", "error", err, "plan_id", planID)
    return nil, fmt.Errorf("Failed to parse generated assessment: %w", err)
  }
  return cleaned, nil
}

// SubmitScore stores the caller-computed percentage as-is; no grading and no
// range check happen here.
func (s *assessmentService) SubmitScore(ctx context.Context, profileID, planID uuid.UUID, score int) (*types.Assessment, error) {
  assessment := &types.Assessment{
    ID:          uuid.New(),
    Score:       score,
    ProfileID:   profileID,
    StudyPlanID: planID,
  }
  created, err := s.assessmentRepo.Create(ctx, nil, assessment)
  if err != nil {
    return nil, fmt.Errorf("Failed to save assessment: %w", err)
  }
  return created, nil
}
