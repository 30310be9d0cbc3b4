package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"quartz/internal/model"
	pkgLog "quartz/pkg/log"
)

// Manager tracks at most one active golden-time session per user, in memory.
type Manager struct {
	l              pkgLog.Logger
	defaultMinutes int

	mu       sync.Mutex
	sessions map[string]Session // userID -> active session
	now      func() time.Time
}

// NewManager creates an empty session manager. defaultMinutes <= 0 falls back
// to DefaultMinutes.
func NewManager(l pkgLog.Logger, defaultMinutes int) *Manager {
	if defaultMinutes <= 0 {
		defaultMinutes = DefaultMinutes
	}
	return &Manager{
		l:              l,
		defaultMinutes: defaultMinutes,
		sessions:       make(map[string]Session),
		now:            time.Now,
	}
}

// SetNow overrides the clock. Test seam.
func (m *Manager) SetNow(now func() time.Time) {
	m.now = now
}

// Now returns the manager's current time, honoring SetNow overrides.
func (m *Manager) Now() time.Time {
	return m.now()
}

// Start begins a session of the given length, optionally tied to a task.
// minutes <= 0 falls back to the manager's default. An unexpired active
// session blocks a new one.
func (m *Manager) Start(ctx context.Context, sc model.Scope, minutes int, taskID string) (Session, error) {
	if minutes <= 0 {
		minutes = m.defaultMinutes
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if cur, ok := m.sessions[sc.UserID]; ok && !cur.Expired(now) {
		return Session{}, ErrAlreadyActive
	}

	s := Session{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		TaskID:    taskID,
		Minutes:   minutes,
		StartedAt: now,
		EndsAt:    now.Add(time.Duration(minutes) * time.Minute),
	}
	m.sessions[sc.UserID] = s

	m.l.Infof(ctx, "session manager: started %d minute session %s for user %s", minutes, s.ID, sc.UserID)
	return s, nil
}

// Active returns the user's current session, if one is running and unexpired.
func (m *Manager) Active(ctx context.Context, sc model.Scope) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sc.UserID]
	if !ok || s.Expired(m.now()) {
		return Session{}, false
	}
	return s, true
}

// Stop ends the user's session early and returns it.
func (m *Manager) Stop(ctx context.Context, sc model.Scope) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sc.UserID]
	if !ok || s.Expired(m.now()) {
		return Session{}, ErrNoActive
	}
	delete(m.sessions, sc.UserID)

	m.l.Infof(ctx, "session manager: stopped session %s for user %s", s.ID, sc.UserID)
	return s, nil
}
