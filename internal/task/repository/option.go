package repository

import (
	"time"

	"agentic-task-planner/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	Status  string
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Zero-value fields keep the stored value.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Description string
	Status      model.TaskStatus
	DueDate     *time.Time
}

// CreateSubTaskOptions holds parameters for inserting a new SubTask.
type CreateSubTaskOptions struct {
	TaskID string
	Title  string
}

// UpdateSubTaskOptions holds parameters for updating an existing SubTask.
type UpdateSubTaskOptions struct {
	ID     string
	Title  string
	Status model.TaskStatus
}
