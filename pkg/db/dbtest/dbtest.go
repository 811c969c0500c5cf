// Package dbtest opens throwaway in-memory databases configured like production
package dbtest

import (
	"io"
	"testing"

	"quillpost-api/pkg/db"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Open returns an in-memory SQLite database with models migrated. It uses the
// same gorm configuration as db.Open, so unique violations translate the same way.
func Open(t testing.TB, models ...any) *gorm.DB {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	conn, err := gorm.Open(sqlite.Open(":memory:"), db.NewGormConfig(log, false))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(conn, log, models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
