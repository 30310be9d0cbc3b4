package memory

import (
	"context"
	"sync"

	"quartz/internal/model"
	"quartz/internal/task/repository"
)

// Store is an in-memory TaskRepository. Tasks are kept per user in
// insertion order; display ordering is the caller's concern.
type Store struct {
	mu    sync.RWMutex
	tasks map[string][]model.Task // userID -> tasks
}

var _ repository.TaskRepository = (*Store)(nil)

// New creates an empty in-memory task store.
func New() *Store {
	return &Store{
		tasks: make(map[string][]model.Task),
	}
}

func (s *Store) Create(ctx context.Context, userID string, t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[userID] = append(s.tasks[userID], t)
	return t, nil
}

func (s *Store) Get(ctx context.Context, userID, id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks[userID] {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrTaskNotFound
}

func (s *Store) List(ctx context.Context, userID string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy so callers can sort/filter without racing the store.
	out := make([]model.Task, len(s.tasks[userID]))
	copy(out, s.tasks[userID])
	return out, nil
}

func (s *Store) Update(ctx context.Context, userID string, t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tasks[userID]
	for i := range list {
		if list[i].ID == t.ID {
			list[i] = t
			return t, nil
		}
	}
	return model.Task{}, repository.ErrTaskNotFound
}

func (s *Store) Delete(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tasks[userID]
	for i := range list {
		if list[i].ID == id {
			s.tasks[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return repository.ErrTaskNotFound
}
