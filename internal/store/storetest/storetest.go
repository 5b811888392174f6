// Package storetest opens throwaway databases for tests that need real gorm
// queries without a MySQL server.
package storetest

import (
	"path/filepath"
	"testing"

	"ecommerce-api/internal/db"
	"ecommerce-api/internal/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a migrated SQLite database under t.TempDir and closes it when
// the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shop.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// one connection keeps sqlite from reporting "database is locked"
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.EnsureSchema(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// New returns a Store over a fresh database.
func New(t testing.TB) *store.Store {
	t.Helper()
	return store.New(Open(t))
}
