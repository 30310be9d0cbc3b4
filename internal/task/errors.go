package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound   = errors.New("task not found")
	ErrEmptyTitle = errors.New("task title is empty")
)
