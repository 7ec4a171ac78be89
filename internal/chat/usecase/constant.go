package usecase

const (
	logPrefixAsk     = "internal.chat.usecase.ask"
	logPrefixHistory = "internal.chat.usecase.history"

	// DefaultCacheSize bounds the number of distinct cached prompts.
	DefaultCacheSize = 1024

	// msgParseFailure is returned when the LLM payload carries no usable
	// reply. It is never cached, so the next identical prompt retries.
	msgParseFailure = "Failed to parse LLM response."
)
