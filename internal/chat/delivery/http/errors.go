package http

import (
	"net/http"

	"agentic-task-planner/internal/chat"
	"agentic-task-planner/internal/chat/repository"
	pkgErrors "agentic-task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrEmptyPrompt:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "prompt must not be empty")
	case repository.ErrFailedToList:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "failed to load chat history")
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "LLM service is unavailable")
	}
}
