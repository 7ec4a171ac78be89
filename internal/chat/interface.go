package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Ask answers a free-form prompt, serving repeated prompts from a
	// short-lived cache.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
	// History returns persisted prompt/response exchanges, newest first.
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
}
