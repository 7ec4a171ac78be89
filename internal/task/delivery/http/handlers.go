package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agentic-task-planner/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a new task in pending state.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of tasks with optional status filter.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (pending/in_progress/done)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with its subtasks.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Updates an existing task. All fields are optional (partial update).
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task and its subtasks.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateSubTask godoc
// @Summary     Add a subtask
// @Description Creates a subtask under an existing task.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body createSubReq true "Subtask data"
// @Success     200 {object} subTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/subtasks [POST]
func (h *handler) CreateSubTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSubReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateSubTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSubTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSubTaskResp(output.SubTask))
}

// UpdateSubTask godoc
// @Summary     Update a subtask
// @Description Updates a subtask's title or status (partial update).
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Subtask ID"
// @Param       body body updateSubReq true "Fields to update"
// @Success     200 {object} subTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/subtasks/{id} [PUT]
func (h *handler) UpdateSubTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateSubReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateSubTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSubTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSubTaskResp(output.SubTask))
}
