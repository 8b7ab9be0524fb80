package api

import (
	"net/http"
	"time"

	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/JemAndrew/JemAndrewWebsite/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	contentHandler := NewContentHandler(services, log)
	contactHandler := NewContactHandler(services, log)
	githubHandler := NewGitHubHandler(services, log)
	filesHandler := NewFilesHandler(services, &cfg.Files, log)
	authHandler := NewAuthHandler(&cfg.Auth, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Page payloads
		pages := v1.Group("/pages")
		{
			pages.GET("/home", contentHandler.HomePage)
			pages.GET("/about", contentHandler.AboutPage)
			pages.GET("/education", contentHandler.EducationPage)
			pages.GET("/experience", contentHandler.ExperiencePage)
			pages.GET("/projects", contentHandler.ProjectsPage)
			pages.GET("/projects/:id", contentHandler.ProjectDetailPage)
			pages.GET("/skills", contentHandler.SkillsPage)
		}

		// Flat read-only views
		v1.GET("/skills", contentHandler.SkillsJSON)
		v1.GET("/projects", contentHandler.ProjectsJSON)

		// Contact intake
		v1.POST("/contact", contactHandler.Submit)

		// GitHub mirror
		github := v1.Group("/github")
		{
			github.GET("/profile", githubHandler.Profile)
			github.GET("/repos", githubHandler.Repositories)
			github.GET("/activity", githubHandler.Activity)
			github.GET("/calendar", githubHandler.Calendar)
			github.GET("/languages", githubHandler.Languages)
		}

		// Document downloads
		files := v1.Group("/files")
		{
			files.GET("/cv", filesHandler.CV)
			files.GET("/dissertation/:degree", filesHandler.Dissertation)
		}

		// Admin surface
		admin := v1.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)

			authed := admin.Group("")
			authed.Use(authHandler.RequireAuth())
			{
				authed.GET("/messages", contactHandler.ListMessages)
				authed.POST("/messages/:id/read", contactHandler.MarkRead)
				authed.POST("/messages/:id/replied", contactHandler.MarkReplied)
			}
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "portfolio-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
