package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
)

const genericErrorMessage = "An internal server error occurred."

// RespondError writes the flat {error} body every failure path returns.
func RespondError(c *gin.Context, status int, message string) {
  c.JSON(status, gin.H{"error": message})
}

// RespondServiceError maps domain sentinels onto HTTP statuses; anything
// unrecognized becomes a 500 with a generic message so provider errors are
// never echoed to the client.
func RespondServiceError(c *gin.Context, err error) {
  switch {
  case errors.Is(err, pkgerrors.ErrNotFound):
    RespondError(c, http.StatusNotFound, "Not found.")
  case errors.Is(err, pkgerrors.ErrUnauthorized):
    RespondError(c, http.StatusUnauthorized, "Invalid login credentials.")
  case errors.Is(err, pkgerrors.ErrForbidden):
    RespondError(c, http.StatusForbidden, "You do not have access to this resource.")
  case errors.Is(err, pkgerrors.ErrConflict):
    RespondError(c, http.StatusConflict, "A user with this email or username already exists.")
  case errors.Is(err, pkgerrors.ErrInvalidArgument):
    RespondError(c, http.StatusBadRequest, "Invalid request.")
  default:
    RespondError(c, http.StatusInternalServerError, genericErrorMessage)
  }
}
