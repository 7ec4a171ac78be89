package model

import "time"

// LLMResponse is one persisted prompt/answer exchange with the LLM.
// TaskID and SubtaskID are optional associations to the task domain.
type LLMResponse struct {
	ID        string
	Prompt    string
	Response  string
	TaskID    *string
	SubtaskID *string
	CreatedAt time.Time
}
