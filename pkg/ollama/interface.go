package ollama

import (
	"context"
	"encoding/json"
)

// IOllama defines the interface for the local Ollama LLM client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// ChatCompletion sends a chat request to the OpenAI-compatible endpoint.
	ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Generate sends a prompt to the native completion endpoint and returns
	// the verbatim response payload as received from the server.
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)

	// Model returns the model being used
	Model() string
}
