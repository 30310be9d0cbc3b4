package repository

import (
	"context"

	"quartz/internal/model"
)

// TaskRepository stores tasks per user. Implementations must be safe for
// concurrent use.
type TaskRepository interface {
	Create(ctx context.Context, userID string, t model.Task) (model.Task, error)
	Get(ctx context.Context, userID, id string) (model.Task, error)
	List(ctx context.Context, userID string) ([]model.Task, error)
	Update(ctx context.Context, userID string, t model.Task) (model.Task, error)
	Delete(ctx context.Context, userID, id string) error
}
