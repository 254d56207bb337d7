package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dbmanager/internal/model"
	"dbmanager/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrUnknownStatus = errors.New("unknown status")
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	Status      string
	UserID      uint
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo   *repository.TaskRepository
	statusRepo *repository.StatusRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, statusRepo *repository.StatusRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, statusRepo: statusRepo}
}

func (s *TaskService) ByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

// ByStatus lists tasks in the named status. Unknown names yield no tasks.
func (s *TaskService) ByStatus(ctx context.Context, statusName string) ([]model.Task, error) {
	return s.taskRepo.ListByStatus(ctx, strings.TrimSpace(statusName))
}

func (s *TaskService) Incomplete(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.ListIncomplete(ctx)
}

func (s *TaskService) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	return s.statusRepo.CountTasks(ctx)
}

// Add creates a task. An empty status means "new".
func (s *TaskService) Add(ctx context.Context, input TaskInput) (uint, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return 0, ErrTitleRequired
	}
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = model.StatusNew
	}
	if err := s.checkStatus(ctx, status); err != nil {
		return 0, err
	}
	return s.taskRepo.Create(ctx, title, input.Description, status, input.UserID)
}

func (s *TaskService) UpdateStatus(ctx context.Context, taskID uint, statusName string) error {
	status := strings.TrimSpace(statusName)
	if err := s.checkStatus(ctx, status); err != nil {
		return err
	}
	return s.taskRepo.UpdateStatus(ctx, taskID, status)
}

func (s *TaskService) Delete(ctx context.Context, taskID uint) error {
	return s.taskRepo.Delete(ctx, taskID)
}

func (s *TaskService) checkStatus(ctx context.Context, name string) error {
	_, err := s.statusRepo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w %q", ErrUnknownStatus, name)
	}
	return err
}
