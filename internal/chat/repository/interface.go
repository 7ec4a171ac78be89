package repository

import (
	"context"

	"agentic-task-planner/internal/model"
)

// Repository is the composed interface for the chat domain data store.
type Repository interface {
	LLMResponseRepository
}

// LLMResponseRepository defines all data access methods for the
// LLMResponse entity.
type LLMResponseRepository interface {
	CreateResponse(ctx context.Context, opt CreateResponseOptions) (model.LLMResponse, error)
	ListResponses(ctx context.Context, opt ListResponsesOptions) ([]model.LLMResponse, int, error)
}
