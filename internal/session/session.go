package session

import (
	"errors"
	"time"
)

// DefaultMinutes is the pomodoro-style session length used when the user
// does not say how much time they have.
const DefaultMinutes = 25

var (
	ErrAlreadyActive = errors.New("a focus session is already running")
	ErrNoActive      = errors.New("no focus session is running")
)

// Session is one golden-time focus block for a user.
type Session struct {
	ID        string
	UserID    string
	TaskID    string
	Minutes   int
	StartedAt time.Time
	EndsAt    time.Time
}

// Remaining reports how much of the session is left at now, floored at zero.
func (s Session) Remaining(now time.Time) time.Duration {
	if left := s.EndsAt.Sub(now); left > 0 {
		return left
	}
	return 0
}

// Expired reports whether the session's time window has passed.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.EndsAt)
}
