package http

import (
	"time"

	"agentic-task-planner/internal/chat"
	"agentic-task-planner/internal/model"
)

// --- Request DTOs ---

type askReq struct {
	Prompt    string `json:"prompt"     binding:"required"`
	TaskID    string `json:"task_id"    binding:"omitempty,uuid"`
	SubtaskID string `json:"subtask_id" binding:"omitempty,uuid"`
}

func (r askReq) validate() error { return nil }

func (r askReq) toInput() chat.AskInput {
	return chat.AskInput{
		Prompt:    r.Prompt,
		TaskID:    r.TaskID,
		SubtaskID: r.SubtaskID,
	}
}

// ---

type historyReq struct {
	TaskID    string `form:"task_id"`
	SubtaskID string `form:"subtask_id"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r historyReq) validate() error { return nil }

func (r historyReq) toInput() chat.HistoryInput {
	return chat.HistoryInput{
		TaskID:    r.TaskID,
		SubtaskID: r.SubtaskID,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// --- Response DTOs ---

type askResp struct {
	Reply  string `json:"reply"`
	Cached bool   `json:"cached"`
}

func newAskResp(out chat.AskOutput) askResp {
	return askResp{
		Reply:  out.Reply,
		Cached: out.Cached,
	}
}

type entryResp struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	TaskID    *string   `json:"task_id,omitempty"`
	SubtaskID *string   `json:"subtask_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newEntryResp(entry model.LLMResponse) entryResp {
	return entryResp{
		ID:        entry.ID,
		Prompt:    entry.Prompt,
		Response:  entry.Response,
		TaskID:    entry.TaskID,
		SubtaskID: entry.SubtaskID,
		CreatedAt: entry.CreatedAt,
	}
}

type historyResp struct {
	Entries []entryResp `json:"entries"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
}

func newHistoryResp(out chat.HistoryOutput) historyResp {
	entries := make([]entryResp, len(out.Entries))
	for i, entry := range out.Entries {
		entries[i] = newEntryResp(entry)
	}
	return historyResp{
		Entries: entries,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}
