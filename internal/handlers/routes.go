package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	SubmissionService services.SubmissionService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// Create handlers
	submissionHandler := NewSubmissionHandler(config.SubmissionService)
	queryHandler := NewQueryHandler(config.SubmissionService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "submission-intake-api",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		submissions := v1.Group("/submissions")
		{
			submissions.POST("", submissionHandler.CreateSubmission)
			submissions.GET("", queryHandler.GetSubmissions)
		}
	}
}
