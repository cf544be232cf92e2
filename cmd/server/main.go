package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/internal/handler"
	"github.com/maemanahmaemanah39-collab/venaules/internal/middleware"
	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/config"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/jwtutil"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("venaules")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting venaules service...", zap.String("environment", cfg.Server.Env))

	// Initialize database and run migrations
	if _, err := database.InitDB(&cfg.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(model.All()...); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed")

	// Initialize JWT utility and handler state
	jwt := jwtutil.NewJWTUtil(&cfg.JWT)
	handler.Init(jwt)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Public form rate limiter: 5 requests per 5 minutes per client IP
	limiter := security.NewRateLimiter(5, 5*time.Minute)
	defer limiter.Close()

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(middleware.MetricsMiddleware)

	handler.RegisterRoutes(e, jwt, limiter)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
