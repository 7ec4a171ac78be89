package http

import (
	"net/http"

	"agentic-task-planner/internal/planner"
	pkgErrors "agentic-task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case planner.ErrEmptyPrompt:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "prompt must not be empty")
	default:
		return err
	}
}

// outcomeError maps a non-success dispatch outcome to an HTTP error.
// Unknown intents are a normal answer, not a failure, and stay 200.
func outcomeError(out planner.ProcessPromptOutput) error {
	switch out.Kind {
	case planner.OutcomeValidationError:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, out.Message)
	case planner.OutcomeNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, out.Message)
	case planner.OutcomeUpstreamError:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, out.Message)
	default:
		return nil
	}
}
