package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"agentic-task-planner/internal/chat"
	"agentic-task-planner/internal/chat/repository"
	"agentic-task-planner/pkg/log"
	"agentic-task-planner/pkg/ollama"
)

var _ chat.UseCase = (*implUseCase)(nil)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l    log.Logger
	llm  ollama.IOllama
	repo repository.Repository

	// cache maps the exact prompt string to the verbatim LLM payload.
	cache *expirable.LRU[string, []byte]
}

// New creates a new chat UseCase implementation. Repeated prompts are
// answered from an in-memory cache for cacheTTL.
func New(l log.Logger, llm ollama.IOllama, repo repository.Repository, cacheTTL time.Duration, cacheSize int) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &implUseCase{
		l:     l,
		llm:   llm,
		repo:  repo,
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, cacheTTL),
	}
}
