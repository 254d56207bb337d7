package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"dbmanager/internal/model"
)

// ErrDuplicateEmail is returned when an e-mail is already registered.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository handles queries on users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, fullname, email string) (uint, error) {
	var id uint
	err := r.db.WithContext(ctx).
		Raw(`INSERT INTO users (fullname, email) VALUES (?, ?) RETURNING id`, fullname, email).
		Scan(&id).Error
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("create user %q: %w", email, ErrDuplicateEmail)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// ListWithoutTasks returns users that own no task at all.
func (r *UserRepository) ListWithoutTasks(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM users WHERE id NOT IN (SELECT DISTINCT user_id FROM tasks) ORDER BY id`).
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users without tasks: %w", err)
	}
	return users, nil
}

// FindByEmail matches emails against a LIKE pattern such as "%@example.com".
func (r *UserRepository) FindByEmail(ctx context.Context, pattern string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM users WHERE email LIKE ? ORDER BY id`, pattern).
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("find users by email: %w", err)
	}
	return users, nil
}

func (r *UserRepository) UpdateName(ctx context.Context, userID uint, fullname string) error {
	res := r.db.WithContext(ctx).Exec(`UPDATE users SET fullname = ? WHERE id = ?`, fullname, userID)
	if res.Error != nil {
		return fmt.Errorf("update user name: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user name: user %d: %w", userID, ErrNotFound)
	}
	return nil
}

// Delete removes a user; the schema cascades the delete to the user's tasks.
func (r *UserRepository) Delete(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM users WHERE id = ?`, userID)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete user: user %d: %w", userID, ErrNotFound)
	}
	return nil
}

func (r *UserRepository) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.User{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	return ids, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
