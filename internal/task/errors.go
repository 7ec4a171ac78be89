package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubTaskNotFound = errors.New("subtask not found")
	ErrInvalidStatus   = errors.New("invalid status")
)
