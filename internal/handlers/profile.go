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

type ProfileHandler struct {
  log            *logger.Logger
  profileService services.ProfileService
}

func NewProfileHandler(log *logger.Logger, profileService services.ProfileService) *ProfileHandler {
  return &ProfileHandler{log: log.With("handler", "ProfileHandler"), profileService: profileService}
}

func (ph *ProfileHandler) GetProfile(c *gin.Context) {
  profileID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid profile id")
    return
  }
  if !RequireOwnUserID(c, profileID) {
    return
  }

  profile, err := ph.profileService.GetByID(c.Request.Context(), profileID)
  if err != nil {
    if errors.Is(err, pkgerrors.ErrNotFound) {
      RespondError(c, http.StatusNotFound, "Profile not found.")
      return
    }
    ph.log.Error("Get profile failed", "error", err, "profile_id", profileID)
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, profile)
}
