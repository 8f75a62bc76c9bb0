package middleware

import (
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/requestdata"
  "github.com/studyloop/studyloop-backend/internal/services"
)

type AuthMiddleware struct {
  log      *logger.Logger
  identity services.IdentityProvider
}

func NewAuthMiddleware(log *logger.Logger, identity services.IdentityProvider) *AuthMiddleware {
  middlewareLog := log.With("middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLog, identity: identity}
}

// RequireAuth verifies the identity provider's session token and stores the
// verified subject in the request context. Handlers compare caller-supplied
// user ids against it.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := extractToken(c)
    if tokenString == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
      return
    }
    userID, email, err := am.identity.VerifyAccessToken(tokenString)
    if err != nil {
      am.log.Warn("Token verification failed", "error", err)
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
      return
    }
    if userID == uuid.Nil {
      c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
      return
    }
    rd := &requestdata.RequestData{
      TokenString: tokenString,
      UserID:      userID,
      Email:       email,
    }
    ctx := requestdata.WithRequestData(c.Request.Context(), rd)
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}

func extractToken(c *gin.Context) string {
  if qToken := c.Query("token"); qToken != "" {
    return qToken
  }
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return ""
}
