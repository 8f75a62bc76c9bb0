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

type TaskHandler struct {
  log             *logger.Logger
  scheduleService services.ScheduleService
}

func NewTaskHandler(log *logger.Logger, scheduleService services.ScheduleService) *TaskHandler {
  return &TaskHandler{log: log.With("handler", "TaskHandler"), scheduleService: scheduleService}
}

func (th *TaskHandler) CreateTask(c *gin.Context) {
  var req struct {
    ScheduleID string `json:"scheduleId"`
    Title      string `json:"title"`
  }
  if err := c.ShouldBindJSON(&req); err != nil || req.ScheduleID == "" || req.Title == "" {
    RespondError(c, http.StatusBadRequest, "scheduleId and title are required.")
    return
  }
  scheduleID, err := uuid.Parse(req.ScheduleID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid scheduleId")
    return
  }

  schedule, err := th.scheduleService.GetSchedule(c.Request.Context(), scheduleID)
  if err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "Schedule not found.")
      return
    }
    RespondServiceError(c, err)
    return
  }
  if !RequireOwnUserID(c, schedule.ProfileID) {
    return
  }

  task, err := th.scheduleService.AddTask(c.Request.Context(), scheduleID, req.Title)
  if err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "Schedule not found.")
      return
    }
    th.log.Error("Create task failed", "error", err, "schedule_id", scheduleID)
    RespondError(c, http.StatusInternalServerError, "Failed to create task.")
    return
  }
  c.JSON(http.StatusCreated, task)
}

// authorizeTask resolves the task's owning schedule and rejects callers who
// are not that schedule's profile. Returns false after writing the response.
func (th *TaskHandler) authorizeTask(c *gin.Context, taskID uuid.UUID) bool {
  task, err := th.scheduleService.GetTask(c.Request.Context(), taskID)
  if err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "Task not found.")
      return false
    }
    RespondServiceError(c, err)
    return false
  }
  schedule, err := th.scheduleService.GetSchedule(c.Request.Context(), task.ScheduleID)
  if err != nil {
    RespondServiceError(c, err)
    return false
  }
  return RequireOwnUserID(c, schedule.ProfileID)
}

func (th *TaskHandler) UpdateTask(c *gin.Context) {
  taskID, err := uuid.Parse(c.Param("taskId"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid taskId")
    return
  }
  var req struct {
    IsCompleted *bool `json:"isCompleted"`
  }
  if err := c.ShouldBindJSON(&req); err != nil || req.IsCompleted == nil {
    RespondError(c, http.StatusBadRequest, "isCompleted is required.")
    return
  }
  if !th.authorizeTask(c, taskID) {
    return
  }

  task, err := th.scheduleService.SetTaskCompletion(c.Request.Context(), taskID, *req.IsCompleted)
  if err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "Task not found.")
      return
    }
    th.log.Error("Update task failed", "error", err, "task_id", taskID)
    RespondError(c, http.StatusInternalServerError, "Failed to update task.")
    return
  }
  c.JSON(http.StatusOK, task)
}

func (th *TaskHandler) DeleteTask(c *gin.Context) {
  taskID, err := uuid.Parse(c.Param("taskId"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid taskId")
    return
  }
  if !th.authorizeTask(c, taskID) {
    return
  }

  if err := th.scheduleService.DeleteTask(c.Request.Context(), taskID); err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "Task not found.")
      return
    }
    th.log.Error("Delete task failed", "error", err, "task_id", taskID)
    RespondError(c, http.StatusInternalServerError, "Failed to delete task.")
    return
  }
  c.Status(http.StatusNoContent)
}
