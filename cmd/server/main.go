package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/surawits/vibeLink/internal/config"
	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/handlers"
	"github.com/surawits/vibeLink/internal/middleware"
	"github.com/surawits/vibeLink/internal/models"
	"github.com/surawits/vibeLink/internal/routes"
	"github.com/surawits/vibeLink/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting vibeLink redirector...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Link{},
		&models.VisitLog{},
		&models.SystemConfig{},
		&models.SystemLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	r := gin.New()
	r.SetHTMLTemplate(handlers.PageTemplates())

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.GeneralLimiter))
	routes.RegisterLinkRoutes(api)

	r.GET("/health", handlers.HealthCheck)
	routes.RegisterRedirectRoutes(r)

	port := config.AppConfig.Port
	if port == "" {
		port = "3000"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
