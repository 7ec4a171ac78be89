package ollama

// Config holds the Ollama client configuration.
type Config struct {
	BaseURL string
	Model   string
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat requests a structured output format from the model.
type ResponseFormat struct {
	Type string `json:"type"` // e.g. "json_object"
}

// ChatRequest is the request body for the chat completions endpoint.
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	Stream         bool            `json:"stream"`
}

// ChatResponse is the response body from the chat completions endpoint.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

// Choice is a single completion candidate.
type Choice struct {
	Message Message `json:"message"`
}

// generateRequest is the request body for the native generate endpoint.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GeneratePayload is the subset of the native generate response this
// service cares about. The full payload is kept verbatim by callers.
type GeneratePayload struct {
	Response string `json:"response"`
}
