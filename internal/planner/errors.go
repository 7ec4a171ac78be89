package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyPrompt = errors.New("prompt is empty")
)
