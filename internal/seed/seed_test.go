package seed

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dbmanager/internal/config"
	"dbmanager/internal/model"
	"dbmanager/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(config.DBConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "seed.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, repository.CreateTables(context.Background(), db))
	return db
}

func TestRunDefaults(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	res, err := New(db, gofakeit.New(42)).Run(ctx, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Result{Users: 10, Tasks: 100}, res)

	var users []model.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 10)
	emails := map[string]bool{}
	for _, u := range users {
		assert.NotEmpty(t, u.Fullname)
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true
	}

	total, err := repository.NewTaskRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)

	counts, err := repository.NewStatusRepository(db).CountTasks(ctx)
	require.NoError(t, err)
	var sum int64
	for _, c := range counts {
		sum += c.TaskCount
	}
	assert.Equal(t, total, sum)
}

func TestRunTasksWithoutUsers(t *testing.T) {
	db := setupTestDB(t)

	_, err := New(db, gofakeit.New(1)).Run(context.Background(), Options{Users: 0, Tasks: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoUsers))

	total, err := repository.NewTaskRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRunRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Exec(`DELETE FROM status`).Error)

	_, err := New(db, gofakeit.New(7)).Run(ctx, Options{Users: 3, Tasks: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoStatuses))

	ids, err := repository.NewUserRepository(db).ListIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids, "users must be rolled back with the failed tasks")
}

func TestRunRejectsNegativeCounts(t *testing.T) {
	db := setupTestDB(t)
	_, err := New(db, nil).Run(context.Background(), Options{Users: -1})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "żó", truncate("żółw", 2))
}
