package service

import (
	"context"
	"errors"
	"strings"

	"dbmanager/internal/model"
	"dbmanager/internal/repository"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidEmail = errors.New("invalid email")
)

// UserService provides helpers around users.
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) WithoutTasks(ctx context.Context) ([]model.User, error) {
	return s.repo.ListWithoutTasks(ctx)
}

// FindByEmail matches a LIKE pattern; "%" and "_" are wildcards.
func (s *UserService) FindByEmail(ctx context.Context, pattern string) ([]model.User, error) {
	return s.repo.FindByEmail(ctx, pattern)
}

func (s *UserService) Add(ctx context.Context, fullname, email string) (uint, error) {
	fullname = strings.TrimSpace(fullname)
	email = strings.TrimSpace(email)
	if fullname == "" {
		return 0, ErrNameRequired
	}
	if !strings.Contains(email, "@") {
		return 0, ErrInvalidEmail
	}
	return s.repo.Create(ctx, fullname, email)
}

func (s *UserService) Rename(ctx context.Context, userID uint, fullname string) error {
	fullname = strings.TrimSpace(fullname)
	if fullname == "" {
		return ErrNameRequired
	}
	return s.repo.UpdateName(ctx, userID, fullname)
}

// Delete removes the user together with all of the user's tasks.
func (s *UserService) Delete(ctx context.Context, userID uint) error {
	return s.repo.Delete(ctx, userID)
}
