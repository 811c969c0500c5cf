package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AutoMigrate creates or alters tables straight from the gorm models.
// Only meant for local development; deployed environments run Migrate.
func AutoMigrate(db *gorm.DB, log *logrus.Logger, models ...any) error {
	if db == nil {
		return ErrNotInitialized
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	log.WithField("models", len(models)).Info("Auto-migration completed")
	return nil
}

// Migrate applies every pending SQL migration found in dir
func Migrate(db *gorm.DB, dir string, log *logrus.Logger) error {
	if db == nil {
		return ErrNotInitialized
	}
	if dir == "" {
		dir = "migrations"
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Schema is up to date")
	return nil
}
