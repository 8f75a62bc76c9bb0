package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/services"
)

type ScheduleHandler struct {
  log             *logger.Logger
  scheduleService services.ScheduleService
}

func NewScheduleHandler(log *logger.Logger, scheduleService services.ScheduleService) *ScheduleHandler {
  return &ScheduleHandler{log: log.With("handler", "ScheduleHandler"), scheduleService: scheduleService}
}

// GetOrCreateSchedule returns the caller's schedule for the given day,
// creating it on first use. Calling it repeatedly returns the same row.
func (sh *ScheduleHandler) GetOrCreateSchedule(c *gin.Context) {
  var req struct {
    UserID string `json:"userId"`
    Date   string `json:"date"`
  }
  if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Date == "" {
    RespondError(c, http.StatusBadRequest, "userId and date are required.")
    return
  }
  userID, err := uuid.Parse(req.UserID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid userId")
    return
  }
  date, err := time.Parse(time.RFC3339, req.Date)
  if err != nil {
    // The client also sends bare calendar dates.
    date, err = time.Parse("2006-01-02", req.Date)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid date")
      return
    }
  }
  if !RequireOwnUserID(c, userID) {
    return
  }

  schedule, err := sh.scheduleService.GetOrCreate(c.Request.Context(), userID, date)
  if err != nil {
    sh.log.Error("Get or create schedule failed", "error", err, "user_id", userID)
    RespondError(c, http.StatusInternalServerError, "Failed to handle schedule.")
    return
  }
  c.JSON(http.StatusOK, schedule)
}
