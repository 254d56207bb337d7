package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dbmanager/internal/model"
)

// StatusRepository reads the status table. Statuses are never deleted.
type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) FindByName(ctx context.Context, name string) (*model.Status, error) {
	var status model.Status
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&status).Error
	switch {
	case err == nil:
		return &status, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find status %q: %w", name, ErrNotFound)
	default:
		return nil, fmt.Errorf("find status: %w", err)
	}
}

func (r *StatusRepository) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.Status{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list status ids: %w", err)
	}
	return ids, nil
}

// CountTasks returns the number of tasks per status, including statuses with none.
func (r *StatusRepository) CountTasks(ctx context.Context) ([]model.StatusCount, error) {
	var counts []model.StatusCount
	err := r.db.WithContext(ctx).
		Raw(`SELECT s.name, COUNT(t.id) AS task_count
			FROM status s
			LEFT JOIN tasks t ON s.id = t.status_id
			GROUP BY s.name
			ORDER BY s.name`).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}
	return counts, nil
}
