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

type PlanHandler struct {
  log         *logger.Logger
  planService services.PlanService
}

func NewPlanHandler(log *logger.Logger, planService services.PlanService) *PlanHandler {
  return &PlanHandler{log: log.With("handler", "PlanHandler"), planService: planService}
}

func (ph *PlanHandler) CreatePlan(c *gin.Context) {
  var req struct {
    Topics   []string `json:"topics"`
    Duration string   `json:"duration"`
    UserID   string   `json:"userId"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid request body")
    return
  }
  if len(req.Topics) == 0 || req.Duration == "" || req.UserID == "" {
    RespondError(c, http.StatusBadRequest, "Topics, duration, and userId are required.")
    return
  }
  userID, err := uuid.Parse(req.UserID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid userId")
    return
  }
  if !RequireOwnUserID(c, userID) {
    return
  }

  plan, err := ph.planService.GeneratePlan(c.Request.Context(), userID, req.Topics, req.Duration)
  if err != nil {
    ph.log.Error("Create plan failed", "error", err, "user_id", userID)
    RespondError(c, http.StatusInternalServerError, "Failed to create study plan. The AI model may be temporarily unavailable.")
    return
  }
  c.JSON(http.StatusCreated, plan)
}

func (ph *PlanHandler) ListPlans(c *gin.Context) {
  userID, err := uuid.Parse(c.Param("userId"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid userId")
    return
  }
  if !RequireOwnUserID(c, userID) {
    return
  }

  plans, err := ph.planService.ListByProfile(c.Request.Context(), userID)
  if err != nil {
    ph.log.Error("List plans failed", "error", err, "user_id", userID)
    RespondError(c, http.StatusInternalServerError, "Failed to fetch study plans.")
    return
  }
  c.JSON(http.StatusOK, plans)
}

func (ph *PlanHandler) GetPlan(c *gin.Context) {
  planID, err := uuid.Parse(c.Param("planId"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid planId")
    return
  }

  plan, err := ph.planService.GetByID(c.Request.Context(), planID)
  if err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "Study plan not found.")
      return
    }
    ph.log.Error("Get plan failed", "error", err, "plan_id", planID)
    RespondError(c, http.StatusInternalServerError, "Failed to fetch study plan.")
    return
  }
  if !RequireOwnUserID(c, plan.ProfileID) {
    return
  }
  c.JSON(http.StatusOK, plan)
}

// DeletePlan removes a plan and, through the cascade, its assessments.
func (ph *PlanHandler) DeletePlan(c *gin.Context) {
  planID, err := uuid.Parse(c.Param("planId"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid planId")
    return
  }

  plan, err := ph.planService.GetByID(c.Request.Context(), planID)
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

  if err := ph.planService.DeletePlan(c.Request.Context(), planID); err != nil {
    ph.log.Error("Delete plan failed", "error", err, "plan_id", planID)
    RespondError(c, http.StatusInternalServerError, "Failed to delete study plan.")
    return
  }
  c.Status(http.StatusNoContent)
}
