package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quillpost-api/pkg/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotInitialized is returned by helpers handed a nil connection
var ErrNotInitialized = errors.New("database not initialized")

// logrusWriter routes gorm's query log through the application logger
type logrusWriter struct {
	log *logrus.Logger
}

func (w logrusWriter) Printf(format string, args ...any) {
	w.log.WithField("component", "gorm").Infof(format, args...)
}

// NewGormConfig is the gorm configuration shared by every dialect the API opens
func NewGormConfig(log *logrus.Logger, prepareStmt bool) *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(logrusWriter{log: log}, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		SkipDefaultTransaction: true,
		PrepareStmt:            prepareStmt,
		// unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	}
}

// Open connects to PostgreSQL, sizes the pool and verifies the connection
func Open(cfg *config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), NewGormConfig(log, cfg.PrepareStmt))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxIdleTime(cfg.MaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.MaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.WithFields(logrus.Fields{
		"target":   cfg.Target(),
		"max_open": cfg.MaxOpenConns,
		"max_idle": cfg.MaxIdleConns,
		"prepared": cfg.PrepareStmt,
	}).Info("Connected to database")

	return db, nil
}

// Close releases the pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// Health pings the database with a short deadline
func Health(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return ErrNotInitialized
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
