package app

import (
	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/internal/middleware"
	"github.com/infektyd/FoundationWriting/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// Exercises
		authGroup.GET("/exercises/daily", c.exercise.Daily)
		authGroup.POST("/exercises/:id/start", c.exercise.Start)
		authGroup.POST("/exercises/:id/submit", c.exercise.Submit)

		// Roadmap
		authGroup.POST("/roadmap", c.roadmap.Generate)

		// Profile and progression
		authGroup.GET("/profile", c.progression.Profile)
		authGroup.GET("/profile/achievements", c.progression.Achievements)
		authGroup.GET("/profile/skills", c.progression.Skills)
		authGroup.GET("/profile/sessions", c.progression.Sessions)
		authGroup.POST("/profile/sessions", c.progression.RecordSession)

		// Challenges
		authGroup.GET("/challenges", c.challenge.List)
		authGroup.POST("/challenges/:id/start", c.challenge.Start)
	}
}
