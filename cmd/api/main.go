package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskboard-api/internal/client"
	"taskboard-api/internal/config"
	"taskboard-api/internal/database"
	"taskboard-api/internal/events"
	"taskboard-api/internal/job"
	"taskboard-api/internal/mailer"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Taskboard API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
	)

	// Initialize database; the pod stays alive and retries in the
	// background if the database is not reachable yet
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
		db = database.GetDB()
	} else {
		logger.Info("Database connected successfully")

		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.New()
	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
	}

	// Redis is optional: without it events stay instance-local
	if err := database.InitRedis(cfg.Redis, logger); err != nil {
		logger.Warn("Redis unavailable, events will not cross instances", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}

	// Event hub
	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	hub := events.NewHub(logger, m)
	go hub.Run(hubCtx)
	publisher := events.NewBroadcastPublisher(hub, logger, m)

	// External collaborators
	mailSender := mailer.NewSMTPSender(cfg.SMTP, logger)
	githubClient := client.NewGithubClient(
		cfg.GitHub.APIBaseURL,
		cfg.GitHub.OAuthBaseURL,
		cfg.GitHub.Token,
		cfg.GitHub.ClientID,
		cfg.GitHub.ClientSecret,
		cfg.GitHub.Timeout,
		logger,
		m,
	)

	// Nightly sweep for rows stranded by non-cascading deletes
	scheduler := cron.New()
	if db != nil {
		cleanup := job.NewCleanupJob(
			repository.NewCardRepository(db),
			repository.NewTaskRepository(db),
			repository.NewInviteRepository(db),
			logger,
		)
		if _, err := scheduler.AddJob("0 3 * * *", cleanup); err != nil {
			logger.Warn("Failed to schedule cleanup job", zap.Error(err))
		}
	}
	scheduler.Start()

	// Setup router with all dependencies
	r := router.Setup(&router.Config{
		DB:             db,
		Logger:         logger,
		Metrics:        m,
		Hub:            hub,
		Publisher:      publisher,
		Mailer:         mailSender,
		Github:         githubClient,
		JWTSecret:      cfg.JWT.Secret,
		JWTTTL:         cfg.JWT.TTL,
		OAuthBaseURL:   cfg.GitHub.OAuthBaseURL,
		OAuthClientID:  cfg.GitHub.ClientID,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Taskboard API started successfully", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	scheduler.Stop()
	hubCancel()
	if db != nil {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
