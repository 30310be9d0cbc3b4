package chat

import "errors"

// ErrEmptyMessage is returned when the message is blank after trimming.
var ErrEmptyMessage = errors.New("message is empty")
