package planner

import "context"

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// ProcessPrompt classifies a free-text prompt into an intent and
	// dispatches the matching action (send email, create calendar event,
	// delete calendar event, or chat). Failures of the downstream
	// capabilities surface as outcomes, not errors.
	ProcessPrompt(ctx context.Context, input ProcessPromptInput) (ProcessPromptOutput, error)
}
