package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quillpost-api/internal/models"
	"quillpost-api/pkg/config"
	"quillpost-api/pkg/db"
	"quillpost-api/pkg/redis"
	"quillpost-api/router"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appConfig, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger, err := router.NewLogger(appConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize logger")
	}
	defer sentry.Flush(2 * time.Second)

	database, err := db.Open(appConfig.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}

	if appConfig.Database.MigrateOnBoot {
		if err := migrateSchema(appConfig, database, logger); err != nil {
			logger.WithError(err).Fatal("Failed to run database migrations")
		}
	}

	// Failed-login throttling is skipped when Redis is unreachable
	redisClient := connectRedis(ctx, appConfig.Redis, logger)

	engine, err := router.SetupRouter(router.Dependencies{
		Config: appConfig,
		DB:     database,
		Redis:  redisClient,
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to set up router")
	}

	requestTimeout := time.Duration(appConfig.RequestTimeout) * time.Second
	srv := &http.Server{
		Addr:              appConfig.Host + ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: requestTimeout,
		// generation waits on the model, so the write deadline covers the provider timeout
		WriteTimeout: requestTimeout + appConfig.Generate.Timeout,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"addr":        srv.Addr,
			"environment": appConfig.Environment,
			"version":     appConfig.AppVersion,
		}).Info("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(appConfig.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server shutdown error")
	}

	closeResources(database, redisClient, logger)
}

// migrateSchema uses gorm AutoMigrate in development and the SQL migrations elsewhere
func migrateSchema(appConfig *config.AppConfig, database *gorm.DB, logger *logrus.Logger) error {
	if appConfig.IsDevelopment() {
		return db.AutoMigrate(database, logger, &models.User{})
	}
	return db.Migrate(database, appConfig.Database.MigrationsPath, logger)
}

// connectRedis returns nil when Redis cannot be reached so callers can degrade
func connectRedis(ctx context.Context, cfg *config.RedisConfig, logger *logrus.Logger) redis.RedisClient {
	client, err := cfg.NewClient()
	if err != nil {
		logger.WithError(err).Warn("Invalid Redis configuration, continuing without it")
		return nil
	}
	if err := redis.Connect(ctx, client, cfg.ClientConfig(), logger); err != nil {
		logger.WithError(err).Warn("Redis unavailable, continuing without it")
		return nil
	}
	logger.Info("Connected to Redis")
	return client
}

func closeResources(database *gorm.DB, redisClient redis.RedisClient, logger *logrus.Logger) {
	if err := db.Close(database); err != nil {
		logger.WithError(err).Error("Error closing database connection")
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.WithError(err).Error("Error closing Redis connection")
		}
	}
	logger.Info("Shutdown complete")
}
