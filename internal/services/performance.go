package services

import (
  "context"
  "time"
  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "gorm.io/gorm"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/repos"
  "github.com/studyloop/studyloop-backend/internal/types"
)

// AssessmentWithPlan is an assessment row plus the owning plan's title, the
// shape the score-history view consumes.
type AssessmentWithPlan struct {
  ID          uuid.UUID `json:"id"`
  Score       int       `json:"score"`
  ProfileID   uuid.UUID `json:"profileId"`
  StudyPlanID uuid.UUID `json:"studyPlanId"`
  CreatedAt   time.Time `json:"createdAt"`
  StudyPlan   PlanRef   `json:"studyPlan"`
}

type PlanRef struct {
  Title string `json:"title"`
}

type PerformanceSummary struct {
  Profile     *types.Profile        `json:"profile"`
  Plans       []*types.StudyPlan    `json:"plans"`
  Assessments []*AssessmentWithPlan `json:"assessments"`
}

type PerformanceService interface {
  GetSummary(ctx context.Context, profileID uuid.UUID) (*PerformanceSummary, error)
}

type performanceService struct {
  db             *gorm.DB
  log            *logger.Logger
  profileRepo    repos.ProfileRepo
  planRepo       repos.StudyPlanRepo
  assessmentRepo repos.AssessmentRepo
}

func NewPerformanceService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo, planRepo repos.StudyPlanRepo, assessmentRepo repos.AssessmentRepo) PerformanceService {
  serviceLog := log.With("service", "PerformanceService")
  return &performanceService{
    db:             db,
    log:            serviceLog,
    profileRepo:    profileRepo,
    planRepo:       planRepo,
    assessmentRepo: assessmentRepo,
  }
}

// GetSummary fetches profile, plans and assessments concurrently and joins
// each assessment to its plan title.
func (s *performanceService) GetSummary(ctx context.Context, profileID uuid.UUID) (*PerformanceSummary, error) {
  var (
    profile     *types.Profile
    plans       []*types.StudyPlan
    assessments []*types.Assessment
  )

  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    p, err := s.profileRepo.GetByID(gctx, nil, profileID)
    if err != nil {
      return err
    }
    profile = p
    return nil
  })
  g.Go(func() error {
    ps, err := s.planRepo.GetByProfileID(gctx, nil, profileID)
    if err != nil {
      return err
    }
    plans = ps
    return nil
  })
  g.Go(func() error {
    as, err := s.assessmentRepo.GetByProfileID(gctx, nil, profileID)
    if err != nil {
      return err
    }
    assessments = as
    return nil
  })
  if err := g.Wait(); err != nil {
    return nil, err
  }

  titles := make(map[uuid.UUID]string, len(plans))
  for _, p := range plans {
    titles[p.ID] = p.Title
  }

  joined := make([]*AssessmentWithPlan, 0, len(assessments))
  for _, a := range assessments {
    title, ok := titles[a.StudyPlanID]
    if !ok {
      plan, err := s.planRepo.GetByID(ctx, nil, a.StudyPlanID)
      if err == nil {
        title = plan.Title
      }
    }
    joined = append(joined, &AssessmentWithPlan{
      ID:          a.ID,
      Score:       a.Score,
      ProfileID:   a.ProfileID,
      StudyPlanID: a.StudyPlanID,
      CreatedAt:   a.CreatedAt,
      StudyPlan:   PlanRef{Title: title},
    })
  }

  return &PerformanceSummary{
    Profile:     profile,
    Plans:       plans,
    Assessments: joined,
  }, nil
}
