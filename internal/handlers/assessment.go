package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/studyloop/studyloop-backend/internal/logger"
  pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
  "github.com/studyloop/studyloop-backend/internal/services"
)

type AssessmentHandler struct {
  log               *logger.Logger
  assessmentService services.AssessmentService
  planService       services.PlanService
}

func NewAssessmentHandler(log *logger.Logger, assessmentService services.AssessmentService, planService services.PlanService) *AssessmentHandler {
  return &AssessmentHandler{
    log:               log.With("handler", "AssessmentHandler"),
    assessmentService: assessmentService,
    planService:       planService,
  }
}

func (ah *AssessmentHandler) GenerateAssessment(c *gin.Context) {
  var req struct {
    PlanID string `json:"planId"`
  }
  if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == "" {
    RespondError(c, http.StatusBadRequest, "planId is required.")
    return
  }
  planID, err := uuid.Parse(req.PlanID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid planId")
    return
  }

  plan, err := ah.planService.GetByID(c.Request.Context(), planID)
  if err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "Study plan not found.")
      return
    }
    RespondServiceError(c, err)
    return
  }
  if !RequireOwnUserID(c, plan.ProfileID) {
    return
  }

  quiz, err := ah.assessmentService.GenerateQuiz(c.Request.Context(), planID)
  if err != nil {
    ah.log.Error("Generate assessment failed", "error", err, "plan_id", planID)
    RespondError(c, http.StatusInternalServerError, "Failed to generate assessment.")
    return
  }
  c.Data(http.StatusOK, "application/json; charset=utf-8", quiz)
}

func (ah *AssessmentHandler) SubmitAssessment(c *gin.Context) {
  var req struct {
    Score  *int   `json:"score"`
    UserID string `json:"userId"`
    PlanID string `json:"planId"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid request body")
    return
  }
  if req.Score == nil || req.UserID == "" || req.PlanID == "" {
    RespondError(c, http.StatusBadRequest, "score, userId, and planId are required.")
    return
  }
  userID, err := uuid.Parse(req.UserID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid userId")
    return
  }
  planID, err := uuid.Parse(req.PlanID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid planId")
    return
  }
  if !RequireOwnUserID(c, userID) {
    return
  }

  assessment, err := ah.assessmentService.SubmitScore(c.Request.Context(), userID, planID, *req.Score)
  if err != nil {
    ah.log.Error("Submit assessment failed", "error", err, "plan_id", planID)
    RespondError(c, http.StatusInternalServerError, "Failed to save assessment.")
    return
  }
  c.JSON(http.StatusCreated, assessment)
}
