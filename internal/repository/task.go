package repository

import (
	"context"

	"schoolify/internal/domain"
)

// TaskRepository exposes persistence operations for agenda tasks. Every
// listing is scoped to a single owner.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	ListByUserAndDate(ctx context.Context, userID, date string) ([]domain.Task, error)
	ListDates(ctx context.Context, userID string) ([]string, error)
}
