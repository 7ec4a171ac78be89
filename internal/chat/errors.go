package chat

import "errors"

var (
	ErrEmptyPrompt = errors.New("prompt must not be empty")
)
