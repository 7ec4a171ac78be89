package http

import (
	"time"

	"agentic-task-planner/internal/model"
	"agentic-task-planner/internal/task"
	"agentic-task-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	DueDate     *time.Time `json:"due_date"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Status: r.Status,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       string     `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	Status      string     `json:"status"      binding:"omitempty,oneof=pending in_progress done"`
	DueDate     *time.Time `json:"due_date"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

// ---

type createSubReq struct {
	TaskID string `json:"-"` // populated from URI param
	Title  string `json:"title" binding:"required,min=1,max=255"`
}

func (r createSubReq) validate() error { return nil }

func (r createSubReq) toInput() task.CreateSubTaskInput {
	return task.CreateSubTaskInput{
		TaskID: r.TaskID,
		Title:  r.Title,
	}
}

// ---

type updateSubReq struct {
	ID     string `json:"-"` // populated from URI param
	Title  string `json:"title"  binding:"omitempty,min=1,max=255"`
	Status string `json:"status" binding:"omitempty,oneof=pending in_progress done"`
}

func (r updateSubReq) validate() error { return nil }

func (r updateSubReq) toInput() task.UpdateSubTaskInput {
	return task.UpdateSubTaskInput{
		ID:     r.ID,
		Title:  r.Title,
		Status: r.Status,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	DueDate     *response.Date    `json:"due_date,omitempty" swaggertype:"string"`
	CreatedAt   response.DateTime `json:"created_at"         swaggertype:"string"`
	UpdatedAt   response.DateTime `json:"updated_at"         swaggertype:"string"`
}

func newTaskResp(t model.Task) taskResp {
	var due *response.Date
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		due = &d
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     due,
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
}

type subTaskResp struct {
	ID        string            `json:"id"`
	TaskID    string            `json:"task_id"`
	Title     string            `json:"title"`
	Status    string            `json:"status"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
	UpdatedAt response.DateTime `json:"updated_at" swaggertype:"string"`
}

func newSubTaskResp(st model.SubTask) subTaskResp {
	return subTaskResp{
		ID:        st.ID,
		TaskID:    st.TaskID,
		Title:     st.Title,
		Status:    string(st.Status),
		CreatedAt: response.DateTime(st.CreatedAt),
		UpdatedAt: response.DateTime(st.UpdatedAt),
	}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task     taskResp      `json:"task"`
	SubTasks []subTaskResp `json:"subtasks"`
}

func newDetailResp(out task.DetailTaskOutput) detailResp {
	subtasks := make([]subTaskResp, len(out.SubTasks))
	for i, st := range out.SubTasks {
		subtasks[i] = newSubTaskResp(st)
	}
	return detailResp{
		Task:     newTaskResp(out.Task),
		SubTasks: subtasks,
	}
}
