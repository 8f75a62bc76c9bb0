package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/content"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/repos"
  "github.com/studyloop/studyloop-backend/internal/types"
)

type PlanService interface {
  GeneratePlan(ctx context.Context, profileID uuid.UUID, topics []string, duration string) (*types.StudyPlan, error)
  ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*types.StudyPlan, error)
  GetByID(ctx context.Context, planID uuid.UUID) (*types.StudyPlan, error)
  DeletePlan(ctx context.Context, planID uuid.UUID) error
}

type planService struct {
  db       *gorm.DB
  log      *logger.Logger
  provider ContentProvider
  planRepo repos.StudyPlanRepo
}

func NewPlanService(db *gorm.DB, log *logger.Logger, provider ContentProvider, planRepo repos.StudyPlanRepo) PlanService {
  serviceLog := log.With("service", "PlanService")
  return &planService{
    db:       db,
    log:      serviceLog,
    provider: provider,
    planRepo: planRepo,
  }
}

func planPrompt(topics []string, duration string) string {
  return fmt.Sprintf(`
You are an expert study planner. Create a detailed study plan for a student who wants to learn the following topics: %s.
The student has %s to study.
Generate a structured study plan in a valid JSON format. Do not include any text or markdown formatting before or after the JSON object.
The JSON object must have a "title" and a "weekly_plan".
Each week in the "weekly_plan" array must contain a "week" number and a "daily_schedule".
Each "daily_schedule" array must contain objects with a "day", a "topic", and an array of "tasks".
For each task, also include a "resources" array containing one or two relevant, high-quality URLs (like documentation, tutorials, or videos) that would help a student complete that task. Each resource object in the array should have a "title" and a "url".

Example Task Structure:
"tasks": [
  {
    "description": "Read Chapter 1 on useState",
    "resources": [
      {
        "title": "Official React Docs: useState",
        "url": "https://react.dev/reference/react/useState"
      }
    ]
  }
]
`, strings.Join(topics, ", "), duration)
}

// GeneratePlan builds the prompt, makes one provider call, validates the
// returned Plan Document and persists it. The stored topics are the ones the
// caller supplied, not ones re-derived from the document. Repeated identical
// requests create distinct plans.
func (ps *planService) GeneratePlan(ctx context.Context, profileID uuid.UUID, topics []string, duration string) (*types.StudyPlan, error) {
  raw, err := ps.provider.GenerateContent(ctx, planPrompt(topics, duration))
  if err != nil {
    ps.log.Error("Plan generation call failed", "error", err, "profile_id", profileID)
    return nil, fmt.Errorf("Failed to generate study plan: %w", err)
  }

  doc, cleaned, err := content.ParsePlanDocument(raw)
  if err != nil {
    ps.log.Error("Plan document rejected", "error", err, "profile_id", profileID)
    return nil, fmt.Errorf("Failed to parse generated study plan: %w", err)
  }

  topicsJSON, err := json.Marshal(topics)
  if err != nil {
    return nil, fmt.Errorf("Failed to encode topics: %w", err)
  }

  plan := &types.StudyPlan{
    ID:        uuid.New(),
    Title:     doc.Title,
    Topics:    datatypes.JSON(topicsJSON),
    Content:   datatypes.JSON(cleaned),
    ProfileID: profileID,
  }
  created, err := ps.planRepo.Create(ctx, nil, plan)
  if err != nil {
    return nil, fmt.Errorf("Failed to save study plan: %w", err)
  }
  return created, nil
}

func (ps *planService) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*types.StudyPlan, error) {
  return ps.planRepo.GetByProfileID(ctx, nil, profileID)
}

func (ps *planService) GetByID(ctx context.Context, planID uuid.UUID) (*types.StudyPlan, error) {
  return ps.planRepo.GetByID(ctx, nil, planID)
}

// DeletePlan removes the plan; its assessments go with it through the
// cascading foreign key.
func (ps *planService) DeletePlan(ctx context.Context, planID uuid.UUID) error {
  return ps.planRepo.FullDeleteByID(ctx, nil, planID)
}
