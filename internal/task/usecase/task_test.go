package usecase_test

import (
	"context"
	"errors"
	"testing"

	"quartz/internal/model"
	"quartz/internal/task"
	"quartz/internal/task/repository/memory"
	"quartz/internal/task/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

var testScope = model.Scope{UserID: "user-1", Username: "tester"}

func TestCreateDefaults(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, memory.New())

	created, err := uc.Create(ctx, testScope, task.CreateInput{Title: "  Write report  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == "" {
		t.Error("Create did not assign an ID")
	}
	if created.Title != "Write report" {
		t.Errorf("Title = %q, want trimmed %q", created.Title, "Write report")
	}
	if created.Status != model.TaskStatusTodo {
		t.Errorf("Status = %q, want todo", created.Status)
	}
	if created.Priority != model.TaskPriorityMedium {
		t.Errorf("Priority = %q, want medium default", created.Priority)
	}
	if created.DeadlineType != model.DeadlineNone {
		t.Errorf("DeadlineType = %q, want none default", created.DeadlineType)
	}
	if created.EnergyLevel != model.EnergyMedium {
		t.Errorf("EnergyLevel = %q, want medium default", created.EnergyLevel)
	}
	if created.AgentName == "" {
		t.Error("Create did not pair an agent")
	}
}

func TestCreateEmptyTitle(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, memory.New())

	if _, err := uc.Create(ctx, testScope, task.CreateInput{Title: "   "}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("Create blank title: err = %v, want ErrEmptyTitle", err)
	}
}

func TestCreateAgentRotation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, memory.New())

	first, _ := uc.Create(ctx, testScope, task.CreateInput{Title: "one"})
	second, _ := uc.Create(ctx, testScope, task.CreateInput{Title: "two"})

	if first.AgentName == second.AgentName {
		t.Errorf("consecutive tasks got the same agent %q", first.AgentName)
	}
}

func TestListSplitsAndOrders(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, memory.New())

	low, _ := uc.Create(ctx, testScope, task.CreateInput{Title: "low", Priority: model.TaskPriorityLow})
	crit, _ := uc.Create(ctx, testScope, task.CreateInput{Title: "critical", Priority: model.TaskPriorityCritical})
	done, _ := uc.Create(ctx, testScope, task.CreateInput{Title: "finished"})
	if _, err := uc.Complete(ctx, testScope, done.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	out, err := uc.List(ctx, testScope)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(out.Active) != 2 {
		t.Fatalf("Active has %d tasks, want 2", len(out.Active))
	}
	if out.Active[0].ID != crit.ID || out.Active[1].ID != low.ID {
		t.Errorf("Active order = [%s %s], want critical before low", out.Active[0].Title, out.Active[1].Title)
	}
	if len(out.Done) != 1 || out.Done[0].ID != done.ID {
		t.Errorf("Done = %v, want the completed task", out.Done)
	}
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, memory.New())

	created, _ := uc.Create(ctx, testScope, task.CreateInput{Title: "Write report"})

	high := model.TaskPriorityHigh
	updated, err := uc.Update(ctx, testScope, task.UpdateInput{ID: created.ID, Priority: &high})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Priority != model.TaskPriorityHigh {
		t.Errorf("Priority = %q, want high", updated.Priority)
	}
	if updated.Title != "Write report" {
		t.Errorf("Title changed to %q on partial update", updated.Title)
	}
}

func TestUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, memory.New())

	high := model.TaskPriorityHigh
	if _, err := uc.Update(ctx, testScope, task.UpdateInput{ID: "missing", Priority: &high}); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("Update missing: err = %v, want ErrNotFound", err)
	}
}

func TestCompleteMovesOffActiveList(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, memory.New())

	created, _ := uc.Create(ctx, testScope, task.CreateInput{Title: "Write report"})

	completed, err := uc.Complete(ctx, testScope, created.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if completed.Status != model.TaskStatusDone {
		t.Errorf("Status = %q, want done", completed.Status)
	}

	out, _ := uc.List(ctx, testScope)
	if len(out.Active) != 0 {
		t.Errorf("Active still has %d tasks after Complete", len(out.Active))
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, memory.New())

	created, _ := uc.Create(ctx, testScope, task.CreateInput{Title: "Write report"})

	if err := uc.Delete(ctx, testScope, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := uc.Get(ctx, testScope, created.ID); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("Get after Delete: err = %v, want ErrNotFound", err)
	}
	if err := uc.Delete(ctx, testScope, created.ID); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
}
