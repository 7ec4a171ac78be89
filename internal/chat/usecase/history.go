package usecase

import (
	"context"

	"agentic-task-planner/internal/chat"
	"agentic-task-planner/internal/chat/repository"
)

// History returns persisted exchanges, newest first.
func (uc *implUseCase) History(ctx context.Context, input chat.HistoryInput) (chat.HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	entries, total, err := uc.repo.ListResponses(ctx, repository.ListResponsesOptions{
		TaskID:    input.TaskID,
		SubtaskID: input.SubtaskID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.ListResponses: %v", logPrefixHistory, err)
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
