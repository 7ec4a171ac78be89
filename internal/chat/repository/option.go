package repository

// CreateResponseOptions holds parameters for inserting one exchange.
// Empty TaskID/SubtaskID are stored as NULL.
type CreateResponseOptions struct {
	Prompt    string
	Response  string
	TaskID    string
	SubtaskID string
}

// ListResponsesOptions holds filter and pagination parameters for
// listing exchanges.
type ListResponsesOptions struct {
	TaskID    string
	SubtaskID string
	Limit     int
	Offset    int
}
