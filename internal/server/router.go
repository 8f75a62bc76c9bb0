package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/studyloop/studyloop-backend/internal/handlers"
  "github.com/studyloop/studyloop-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler        *handlers.AuthHandler
  AuthMiddleware     *middleware.AuthMiddleware
  ProfileHandler     *handlers.ProfileHandler
  PlanHandler        *handlers.PlanHandler
  AssessmentHandler  *handlers.AssessmentHandler
  ScheduleHandler    *handlers.ScheduleHandler
  TaskHandler        *handlers.TaskHandler
  PerformanceHandler *handlers.PerformanceHandler
}

// NewRouter wires the route table. Paths and methods mirror the original
// API surface; everything keyed by a user id sits behind RequireAuth.
func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Profile
  protected.GET("/profile/:id", cfg.ProfileHandler.GetProfile)
  // Study plans
  protected.POST("/create-plan", cfg.PlanHandler.CreatePlan)
  protected.GET("/study-plans/:userId", cfg.PlanHandler.ListPlans)
  protected.GET("/study-plan/:planId", cfg.PlanHandler.GetPlan)
  protected.DELETE("/study-plan/:planId", cfg.PlanHandler.DeletePlan)
  // Assessments
  protected.POST("/generate-assessment", cfg.AssessmentHandler.GenerateAssessment)
  protected.POST("/submit-assessment", cfg.AssessmentHandler.SubmitAssessment)
  // Schedules & tasks
  protected.POST("/schedule", cfg.ScheduleHandler.GetOrCreateSchedule)
  protected.POST("/tasks", cfg.TaskHandler.CreateTask)
  protected.PATCH("/tasks/:taskId", cfg.TaskHandler.UpdateTask)
  protected.DELETE("/tasks/:taskId", cfg.TaskHandler.DeleteTask)
  // Performance
  protected.GET("/performance/:userId", cfg.PerformanceHandler.GetPerformance)

  return router
}
