package main

import (
	"context"
	"log"
	"time"

	"facility/cmd"
	"facility/internal/config"
	"facility/internal/container"
	"facility/internal/database"
	"facility/internal/logger"
	"facility/internal/middleware"
	"facility/internal/rate_limiter"
	"facility/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		zapLogger.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to connect to the database", zap.Error(err))
	}
	defer db.Close()

	zapLogger.Info("Connected to the database successfully")

	appContainer := container.NewAppContainer(db, cfg, zapLogger)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(rate_limiter.NewRateLimiter(100, time.Minute).Middleware())

	routes.RegisterRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	if err := router.Run(cfg.AppHost); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
