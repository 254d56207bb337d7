package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbmanager/internal/config"
	"dbmanager/internal/model"
	"dbmanager/internal/repository"
)

func setupServices(t *testing.T) (*TaskService, *UserService) {
	t.Helper()
	db, err := repository.NewDB(config.DBConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "service.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, repository.CreateTables(context.Background(), db))

	tasks := NewTaskService(repository.NewTaskRepository(db), repository.NewStatusRepository(db))
	users := NewUserService(repository.NewUserRepository(db))
	return tasks, users
}

func TestTaskServiceAdd(t *testing.T) {
	tasks, users := setupServices(t)
	ctx := context.Background()

	userID, err := users.Add(ctx, "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	_, err = tasks.Add(ctx, TaskInput{Title: "  ", UserID: userID})
	assert.True(t, errors.Is(err, ErrTitleRequired))

	_, err = tasks.Add(ctx, TaskInput{Title: "Plan", Status: "archived", UserID: userID})
	assert.True(t, errors.Is(err, ErrUnknownStatus))

	id, err := tasks.Add(ctx, TaskInput{Title: "Plan", Description: "quarterly", UserID: userID})
	require.NoError(t, err)

	fresh, err := tasks.ByStatus(ctx, model.StatusNew)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, id, fresh[0].ID)
	assert.Equal(t, "quarterly", fresh[0].Description)
}

func TestTaskServiceUpdateStatus(t *testing.T) {
	tasks, users := setupServices(t)
	ctx := context.Background()

	userID, err := users.Add(ctx, "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	id, err := tasks.Add(ctx, TaskInput{Title: "Plan", Status: model.StatusInProgress, UserID: userID})
	require.NoError(t, err)

	assert.True(t, errors.Is(tasks.UpdateStatus(ctx, id, "done"), ErrUnknownStatus))
	require.NoError(t, tasks.UpdateStatus(ctx, id, model.StatusCompleted))

	incomplete, err := tasks.Incomplete(ctx)
	require.NoError(t, err)
	assert.Empty(t, incomplete)

	assert.True(t, errors.Is(tasks.UpdateStatus(ctx, id+100, model.StatusNew), repository.ErrNotFound))

	require.NoError(t, tasks.Delete(ctx, id))
	owned, err := tasks.ByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestUserServiceValidation(t *testing.T) {
	_, users := setupServices(t)
	ctx := context.Background()

	_, err := users.Add(ctx, "", "x@example.com")
	assert.True(t, errors.Is(err, ErrNameRequired))
	_, err = users.Add(ctx, "Grace", "not-an-email")
	assert.True(t, errors.Is(err, ErrInvalidEmail))

	id, err := users.Add(ctx, "Grace Hopper", "grace@example.com")
	require.NoError(t, err)
	assert.True(t, errors.Is(users.Rename(ctx, id, " "), ErrNameRequired))
	require.NoError(t, users.Rename(ctx, id, "Grace B. Hopper"))

	found, err := users.FindByEmail(ctx, "grace@%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Grace B. Hopper", found[0].Fullname)

	idle, err := users.WithoutTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, idle, 1)

	require.NoError(t, users.Delete(ctx, id))
	assert.True(t, errors.Is(users.Delete(ctx, id), repository.ErrNotFound))
}

func TestFormatTasks(t *testing.T) {
	assert.Equal(t, "No tasks found.\n", FormatTasks(nil))
	out := FormatTasks([]model.Task{
		{ID: 1, Title: "Write", Description: "first\nsecond  line"},
		{ID: 2, Title: "Read"},
	})
	assert.Equal(t,
		"Task ID: 1, Title: Write, Description: first second line\n"+
			"Task ID: 2, Title: Read, Description: \n", out)
}

func TestFormatUsers(t *testing.T) {
	assert.Equal(t, "No users found.\n", FormatUsers([]model.User{}))
	assert.Equal(t, "User ID: 3, Name: Ada, Email: ada@example.com\n",
		FormatUsers([]model.User{{ID: 3, Fullname: "Ada", Email: "ada@example.com"}}))
}

func TestFormatStatusCounts(t *testing.T) {
	out := FormatStatusCounts([]model.StatusCount{
		{Name: "completed", TaskCount: 2},
		{Name: "in progress", TaskCount: 0},
		{Name: "new", TaskCount: 5},
	})
	assert.Equal(t, "completed: 2\nin progress: 0\nnew: 5\ntotal: 7\n", out)
}
