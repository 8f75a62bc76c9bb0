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

type PerformanceHandler struct {
  log                *logger.Logger
  performanceService services.PerformanceService
}

func NewPerformanceHandler(log *logger.Logger, performanceService services.PerformanceService) *PerformanceHandler {
  return &PerformanceHandler{
    log:                log.With("handler", "PerformanceHandler"),
    performanceService: performanceService,
  }
}

func (ph *PerformanceHandler) GetPerformance(c *gin.Context) {
  userID, err := uuid.Parse(c.Param("userId"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid userId")
    return
  }
  if !RequireOwnUserID(c, userID) {
    return
  }

  summary, err := ph.performanceService.GetSummary(c.Request.Context(), userID)
  if err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "User profile not found.")
      return
    }
    ph.log.Error("Get performance failed", "error", err, "user_id", userID)
    RespondError(c, http.StatusInternalServerError, "Failed to fetch performance data.")
    return
  }
  c.JSON(http.StatusOK, summary)
}
