package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "agentic-task-planner/pkg/errors"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return req, req.validate()
}

// processCreateSubReq binds and validates the create subtask request body + URI param.
func (h *handler) processCreateSubReq(c *gin.Context) (createSubReq, error) {
	var req createSubReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "task id is required")
	}
	return req, req.validate()
}

// processUpdateSubReq binds and validates the update subtask request body + URI param.
func (h *handler) processUpdateSubReq(c *gin.Context) (updateSubReq, error) {
	var req updateSubReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return req, req.validate()
}
