package http

import (
	"github.com/gin-gonic/gin"

	"agentic-task-planner/pkg/response"
)

// Ask godoc
// @Summary     Ask a free-form question
// @Description Sends the prompt to the LLM and returns its reply. Repeated prompts are answered from a short-lived cache.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Prompt"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request - empty prompt"
// @Failure     502 {object} response.Resp "Bad Gateway - LLM unreachable"
// @Router      /api/v1/chat/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAskResp(output))
}

// History godoc
// @Summary     List chat history
// @Description Returns persisted prompt/response exchanges, newest first, with optional task/subtask filters.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       task_id    query string false "Filter by task ID"
// @Param       subtask_id query string false "Filter by subtask ID"
// @Param       limit      query int    false "Page size (default: 20)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(output))
}
