package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dbmanager/internal/model"
)

// TaskRepository runs the task queries. Every statement binds its inputs.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM tasks WHERE user_id = ? ORDER BY id`, userID).
		Scan(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks by user: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) ListByStatus(ctx context.Context, statusName string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Raw(`SELECT t.* FROM tasks t
			JOIN status s ON t.status_id = s.id
			WHERE s.name = ?
			ORDER BY t.id`, statusName).
		Scan(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks by status: %w", err)
	}
	return tasks, nil
}

// ListIncomplete returns tasks whose status is anything but completed.
func (r *TaskRepository) ListIncomplete(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM tasks
			WHERE status_id != (SELECT id FROM status WHERE name = ?)
			ORDER BY id`, model.StatusCompleted).
		Scan(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list incomplete tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts a task, resolving the status by name, and returns its id.
// An unknown status name fails on the NOT NULL constraint.
func (r *TaskRepository) Create(ctx context.Context, title, description, statusName string, userID uint) (uint, error) {
	var id uint
	err := r.db.WithContext(ctx).
		Raw(`INSERT INTO tasks (title, description, status_id, user_id)
			VALUES (?, ?, (SELECT id FROM status WHERE name = ?), ?)
			RETURNING id`, title, description, statusName, userID).
		Scan(&id).Error
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	return id, nil
}

// CreateWithStatusID inserts a task whose status id is already known.
func (r *TaskRepository) CreateWithStatusID(ctx context.Context, title, description string, statusID, userID uint) error {
	err := r.db.WithContext(ctx).
		Exec(`INSERT INTO tasks (title, description, status_id, user_id) VALUES (?, ?, ?, ?)`,
			title, description, statusID, userID).Error
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID uint, statusName string) error {
	res := r.db.WithContext(ctx).
		Exec(`UPDATE tasks SET status_id = (SELECT id FROM status WHERE name = ?) WHERE id = ?`,
			statusName, taskID)
	if res.Error != nil {
		return fmt.Errorf("update task status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update task status: task %d: %w", taskID, ErrNotFound)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM tasks WHERE id = ?`, taskID)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete task: task %d: %w", taskID, ErrNotFound)
	}
	return nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}
