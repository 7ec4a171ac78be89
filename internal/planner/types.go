package planner

// Intent is the classified purpose of a user prompt.
type Intent string

const (
	IntentSendEmail   Intent = "send_email"
	IntentCreateEvent Intent = "create_event"
	IntentDeleteEvent Intent = "delete_event"
	IntentGeneralChat Intent = "general_chat"
	IntentUnknown     Intent = "unknown"
)

// SendEmailDetails are the entities extracted for a send_email intent.
type SendEmailDetails struct {
	To      string
	Subject string
	Body    string // defaults to the original prompt when absent
}

// CreateEventDetails are the entities extracted for a create_event intent.
// Start and End are local datetime strings (2006-01-02T15:04:05) without
// timezone offset, interpreted in the configured calendar timezone.
type CreateEventDetails struct {
	Title       string
	Description string
	Start       string
	End         string // optional; defaults to Start + 1 hour
}

// DeleteEventDetails are the entities extracted for a delete_event intent.
type DeleteEventDetails struct {
	Title string
	Date  string // optional calendar date (2006-01-02) narrowing the search
}

// ChatDetails carry the conversational reply for a general_chat intent.
type ChatDetails struct {
	Reply string
}

// Classification is the tagged result of intent classification.
// Exactly one detail field matching Intent is non-nil; IntentUnknown
// carries no payload.
type Classification struct {
	Intent      Intent
	SendEmail   *SendEmailDetails
	CreateEvent *CreateEventDetails
	DeleteEvent *DeleteEventDetails
	Chat        *ChatDetails
}

// ProcessPromptInput is the input for prompt processing.
type ProcessPromptInput struct {
	Prompt string
}

// OutcomeKind distinguishes the terminal result classes of a dispatch.
// Not-found and validation failures stay distinct so the delivery layer
// can map them to different statuses.
type OutcomeKind string

const (
	OutcomeSuccess         OutcomeKind = "success"
	OutcomeValidationError OutcomeKind = "validation_error"
	OutcomeNotFound        OutcomeKind = "not_found"
	OutcomeUnknown         OutcomeKind = "unknown_intent"
	OutcomeUpstreamError   OutcomeKind = "upstream_error"
)

// ProcessPromptOutput is the uniform result of classify-and-dispatch.
type ProcessPromptOutput struct {
	Intent  Intent
	Kind    OutcomeKind
	Message string
}
