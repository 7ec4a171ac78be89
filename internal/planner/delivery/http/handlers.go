package http

import (
	"github.com/gin-gonic/gin"

	"agentic-task-planner/pkg/response"
)

// ProcessPrompt godoc
// @Summary     Process a natural-language prompt
// @Description Classifies the prompt into an intent (send_email, create_event, delete_event, general_chat) and executes the matching action.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body promptReq true "Prompt"
// @Success     200 {object} promptResp
// @Failure     400 {object} response.Resp "Bad Request - empty prompt or missing details"
// @Failure     404 {object} response.Resp "Not Found - no matching calendar event"
// @Failure     502 {object} response.Resp "Bad Gateway - downstream capability failed"
// @Router      /api/v1/planner/prompt [POST]
func (h *handler) ProcessPrompt(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessPrompt(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessPrompt: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if err := outcomeError(output); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newPromptResp(output))
}
