package repository

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dbmanager/internal/config"
)

// newTestDB opens a fresh SQLite file with the schema in place.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(config.DBConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "tasks.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, CreateTables(context.Background(), db))
	return db
}

// dockerAvailable checks whether the Docker daemon is reachable.
func dockerAvailable() bool {
	return exec.Command("docker", "info").Run() == nil
}
