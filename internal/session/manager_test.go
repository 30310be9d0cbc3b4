package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"quartz/internal/model"
	"quartz/internal/session"
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

func newTestManager(now time.Time) *session.Manager {
	m := session.NewManager(&mockLogger{}, 0)
	m.SetNow(func() time.Time { return now })
	return m
}

func TestStartDefaultsLength(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(now)

	s, err := m.Start(ctx, testScope, 0, "")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Minutes != session.DefaultMinutes {
		t.Errorf("Minutes = %d, want default %d", s.Minutes, session.DefaultMinutes)
	}
	if want := now.Add(25 * time.Minute); !s.EndsAt.Equal(want) {
		t.Errorf("EndsAt = %v, want %v", s.EndsAt, want)
	}
}

func TestStartConfiguredDefault(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := session.NewManager(&mockLogger{}, 50)
	m.SetNow(func() time.Time { return now })

	s, err := m.Start(ctx, testScope, 0, "")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Minutes != 50 {
		t.Errorf("Minutes = %d, want configured default 50", s.Minutes)
	}
}

func TestStartExplicitLength(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(now)

	s, err := m.Start(ctx, testScope, 45, "task-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Minutes != 45 {
		t.Errorf("Minutes = %d, want 45", s.Minutes)
	}
	if s.TaskID != "task-1" {
		t.Errorf("TaskID = %q, want task-1", s.TaskID)
	}
}

func TestStartBlockedWhileActive(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(now)

	if _, err := m.Start(ctx, testScope, 25, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := m.Start(ctx, testScope, 25, ""); !errors.Is(err, session.ErrAlreadyActive) {
		t.Errorf("second Start: err = %v, want ErrAlreadyActive", err)
	}
}

func TestExpiredSessionAllowsRestart(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(now)

	if _, err := m.Start(ctx, testScope, 25, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}

	m.SetNow(func() time.Time { return now.Add(30 * time.Minute) })

	if _, ok := m.Active(ctx, testScope); ok {
		t.Error("Active reported an expired session")
	}
	if _, err := m.Start(ctx, testScope, 25, ""); err != nil {
		t.Errorf("Start after expiry: %v", err)
	}
}

func TestStop(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(now)

	started, _ := m.Start(ctx, testScope, 25, "")
	stopped, err := m.Stop(ctx, testScope)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if stopped.ID != started.ID {
		t.Errorf("Stop returned session %s, want %s", stopped.ID, started.ID)
	}
	if _, err := m.Stop(ctx, testScope); !errors.Is(err, session.ErrNoActive) {
		t.Errorf("second Stop: err = %v, want ErrNoActive", err)
	}
}

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := session.Session{StartedAt: now, EndsAt: now.Add(25 * time.Minute)}

	if got := s.Remaining(now.Add(10 * time.Minute)); got != 15*time.Minute {
		t.Errorf("Remaining = %v, want 15m", got)
	}
	if got := s.Remaining(now.Add(time.Hour)); got != 0 {
		t.Errorf("Remaining past end = %v, want 0", got)
	}
}
