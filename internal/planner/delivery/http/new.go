package http

import (
	"github.com/gin-gonic/gin"

	"agentic-task-planner/internal/planner"
	"agentic-task-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	ProcessPrompt(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
