package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/studyloop/studyloop-backend/internal/requestdata"
)

// RequireOwnUserID rejects requests whose caller-supplied user id does not
// match the verified identity subject placed in the context by the auth
// middleware. Returns false after writing the response.
func RequireOwnUserID(c *gin.Context, userID uuid.UUID) bool {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "missing or invalid token")
    return false
  }
  if rd.UserID != userID {
    RespondError(c, http.StatusForbidden, "You do not have access to this resource.")
    return false
  }
  return true
}
