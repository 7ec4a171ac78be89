package http

import (
	"github.com/gin-gonic/gin"
)

// processAskReq binds and validates the ask request body.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processHistoryReq binds and validates the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
