package ollama

const (
	// DefaultBaseURL is the default Ollama API endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default model to use
	DefaultModel = "llama3"

	// chatCompletionsPath is the OpenAI-compatible chat endpoint
	chatCompletionsPath = "/v1/chat/completions"

	// generatePath is the native Ollama completion endpoint
	generatePath = "/api/generate"
)
