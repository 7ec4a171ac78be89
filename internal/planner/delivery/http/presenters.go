package http

import (
	"agentic-task-planner/internal/planner"
)

// --- Request DTOs ---

type promptReq struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (r promptReq) validate() error { return nil }

func (r promptReq) toInput() planner.ProcessPromptInput {
	return planner.ProcessPromptInput{
		Prompt: r.Prompt,
	}
}

// --- Response DTOs ---

type promptResp struct {
	Intent  string `json:"intent"`
	Message string `json:"message"`
}

func newPromptResp(out planner.ProcessPromptOutput) promptResp {
	return promptResp{
		Intent:  string(out.Intent),
		Message: out.Message,
	}
}
