package chat

import "agentic-task-planner/internal/model"

// --- UseCase Inputs ---

type AskInput struct {
	Prompt    string
	TaskID    string // optional, links the exchange to a task
	SubtaskID string // optional
}

type HistoryInput struct {
	TaskID    string
	SubtaskID string
	Limit     int
	Offset    int
}

// --- UseCase Outputs ---

type AskOutput struct {
	Reply  string
	Cached bool
}

type HistoryOutput struct {
	Entries []model.LLMResponse
	Total   int
	Limit   int
	Offset  int
}
