package service

import (
	"context"
	"fmt"

	"schoolify/internal/domain"
	"schoolify/internal/repository"
	"schoolify/internal/validate"
)

// TaskService coordinates agenda operations. Every call is scoped to the
// authenticated owner; callers never pass a user id taken from a request body.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	ListByDate(ctx context.Context, ownerID, date string) ([]domain.Task, error)
	MarkedDates(ctx context.Context, ownerID string) (map[string]domain.MarkedDate, error)
	CreateTask(ctx context.Context, ownerID string, req validate.NewTask) (*domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, id string, update domain.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, id string) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.tasks.ListByUser(ctx, ownerID)
}

func (s *taskService) ListByDate(ctx context.Context, ownerID, date string) ([]domain.Task, error) {
	if err := validate.Date(date); err != nil {
		return nil, err
	}
	return s.tasks.ListByUserAndDate(ctx, ownerID, date)
}

func (s *taskService) MarkedDates(ctx context.Context, ownerID string) (map[string]domain.MarkedDate, error) {
	dates, err := s.tasks.ListDates(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return domain.MarkDates(dates), nil
}

func (s *taskService) CreateTask(ctx context.Context, ownerID string, req validate.NewTask) (*domain.Task, error) {
	if err := validate.CreateTask(&req); err != nil {
		return nil, err
	}

	task := &domain.Task{
		UserID: ownerID,
		Name:   req.Name,
		Date:   req.Date,
		Time:   req.Time,
		Status: domain.TaskStatus(req.Status),
		Notes:  req.Notes,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask is a read-then-write without version checks: concurrent updates
// to the same task resolve as last write wins.
func (s *taskService) UpdateTask(ctx context.Context, ownerID, id string, update domain.TaskUpdate) (*domain.Task, error) {
	if err := validate.UpdateTask(&update); err != nil {
		return nil, err
	}

	task, err := s.ownedTask(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	update.Apply(task)

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, ownerID, id string) error {
	if _, err := s.ownedTask(ctx, ownerID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) ownedTask(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != ownerID {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrForbidden)
	}
	return task, nil
}
