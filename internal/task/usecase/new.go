package usecase

import (
	"time"

	"quartz/internal/task"
	"quartz/internal/task/repository"
	pkgLog "quartz/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository
	now  func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  time.Now,
	}
}

// SetNow overrides the clock. Test seam.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
