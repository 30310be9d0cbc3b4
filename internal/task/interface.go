package task

import (
	"context"

	"quartz/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create creates a new task and pairs it with an agent.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// Get returns a single task by ID.
	Get(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// List returns the user's board snapshot in display order.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Update applies a partial update to a task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Complete marks a task done.
	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
