package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/studyloop/studyloop-backend/internal/logger"
  "github.com/studyloop/studyloop-backend/internal/services"
)

type AuthHandler struct {
  log         *logger.Logger
  authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
  return &AuthHandler{log: log.With("handler", "AuthHandler"), authService: authService}
}

// Register validates the payload declaratively (field-level rules), signs up
// with the identity provider and creates the Profile row.
func (ah *AuthHandler) Register(c *gin.Context) {
  var req struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=6"`
    Username string `json:"username" binding:"required,min=3"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, err.Error())
    return
  }

  user, profile, err := ah.authService.RegisterUser(c.Request.Context(), req.Email, req.Password, req.Username)
  if err != nil {
    ah.log.Warn("Registration failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{
    "message": "User registered successfully. Please check your email to confirm.",
    "user":    user,
    "profile": profile,
  })
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=1"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, err.Error())
    return
  }

  session, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    ah.log.Warn("Login failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, session)
}
