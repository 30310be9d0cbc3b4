package task

import (
	"time"

	"quartz/internal/model"
)

// CreateInput is the input for creating a single task.
type CreateInput struct {
	Title        string
	Description  string
	Priority     model.TaskPriority // defaults to medium
	DeadlineType model.DeadlineType // defaults to none
	EnergyLevel  model.EnergyLevel  // defaults to medium
	DueDate      *time.Time
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID           string
	Title        *string
	Description  *string
	Status       *model.TaskStatus
	Priority     *model.TaskPriority
	DeadlineType *model.DeadlineType
	EnergyLevel  *model.EnergyLevel
	DueDate      *time.Time
}

// ListOutput is the board snapshot: active tasks in display order
// (score-descending), completed tasks afterwards.
type ListOutput struct {
	Active []model.Task
	Done   []model.Task
}
