package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/config"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/handlers"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/middleware"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/pkg/server"

	"github.com/gin-gonic/gin"
)

// @title Submission Intake API
// @version 1.0
// @description Accepts contact-form submissions and serves them back by id or in bulk.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@submission-intake.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependencies
	container, err := server.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimiter(
		float64(config.GetEnvAsInt("RATE_LIMIT_RPS", 100)),
		config.GetEnvAsInt("RATE_LIMIT_BURST", 200),
	))
	router.Use(middleware.RequestSizeLimit(1 << 20))
	router.Use(middleware.ErrorHandler())

	// API routes
	handlers.SetupRoutes(router, &handlers.RouterConfig{
		SubmissionService: container.SubmissionService,
	})

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s (%s mode, %s store)", cfg.Port, config.GetDeploymentMode(), cfg.Store.Type)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
