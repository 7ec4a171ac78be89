package http

import (
	"net/http"

	"agentic-task-planner/internal/task"
	pkgErrors "agentic-task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case task.ErrSubTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "subtask not found")
	case task.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be one of pending, in_progress, done")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
