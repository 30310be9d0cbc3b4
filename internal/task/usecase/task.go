package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"quartz/internal/model"
	"quartz/internal/task"
	"quartz/internal/task/repository"
)

// agentNames is the pool of helper personas paired with new tasks,
// assigned round-robin by task count.
var agentNames = []string{"Atlas", "Nova", "Sage", "Quill", "Ember", "Orion"}

// Create creates a new task and pairs it with an agent.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	existing, err := uc.repo.List(ctx, sc.UserID)
	if err != nil {
		return model.Task{}, err
	}

	now := uc.now()
	t := model.Task{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		Status:       model.TaskStatusTodo,
		Priority:     input.Priority,
		DeadlineType: input.DeadlineType,
		EnergyLevel:  input.EnergyLevel,
		DueDate:      input.DueDate,
		AgentName:    agentNames[len(existing)%len(agentNames)],
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if t.Priority == "" {
		t.Priority = model.TaskPriorityMedium
	}
	if t.DeadlineType == "" {
		t.DeadlineType = model.DeadlineNone
	}
	if t.EnergyLevel == "" {
		t.EnergyLevel = model.EnergyMedium
	}

	created, err := uc.repo.Create(ctx, sc.UserID, t)
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: create failed: %v", err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task usecase: created task %s (%q) for user %s", created.ID, created.Title, sc.UserID)
	return created, nil
}

// Get returns a single task by ID.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, sc.UserID, id)
	if err != nil {
		return model.Task{}, uc.mapRepoError(err)
	}
	return t, nil
}

// List returns the user's board snapshot: active tasks score-ordered,
// completed tasks in insertion order.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	all, err := uc.repo.List(ctx, sc.UserID)
	if err != nil {
		return task.ListOutput{}, err
	}

	out := task.ListOutput{}
	for _, t := range all {
		if t.Status.Active() {
			out.Active = append(out.Active, t)
		} else {
			out.Done = append(out.Done, t)
		}
	}
	task.SortByScore(out.Active, uc.now())
	return out, nil
}

// Update applies a partial update to a task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	t, err := uc.repo.Get(ctx, sc.UserID, input.ID)
	if err != nil {
		return model.Task{}, uc.mapRepoError(err)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		t.Title = title
	}
	if input.Description != nil {
		t.Description = strings.TrimSpace(*input.Description)
	}
	if input.Status != nil {
		t.Status = *input.Status
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.DeadlineType != nil {
		t.DeadlineType = *input.DeadlineType
	}
	if input.EnergyLevel != nil {
		t.EnergyLevel = *input.EnergyLevel
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	t.UpdatedAt = uc.now()

	updated, err := uc.repo.Update(ctx, sc.UserID, t)
	if err != nil {
		return model.Task{}, uc.mapRepoError(err)
	}
	return updated, nil
}

// Complete marks a task done.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	done := model.TaskStatusDone
	return uc.Update(ctx, sc, task.UpdateInput{ID: id, Status: &done})
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc.UserID, id); err != nil {
		return uc.mapRepoError(err)
	}
	uc.l.Infof(ctx, "task usecase: deleted task %s for user %s", id, sc.UserID)
	return nil
}

func (uc *implUseCase) mapRepoError(err error) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return task.ErrNotFound
	}
	return err
}
