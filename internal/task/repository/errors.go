package repository

import "errors"

// ErrTaskNotFound is returned when the task does not exist for the user.
var ErrTaskNotFound = errors.New("task not found in repository")
