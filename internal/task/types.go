package task

import (
	"time"

	"agentic-task-planner/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

type ListTasksInput struct {
	Status string
	Limit  int
	Offset int
}

type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Status      string
	DueDate     *time.Time
}

type CreateSubTaskInput struct {
	TaskID string
	Title  string
}

type UpdateSubTaskInput struct {
	ID     string
	Title  string
	Status string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task     model.Task
	SubTasks []model.SubTask
}

type UpdateTaskOutput struct {
	Task model.Task
}

type CreateSubTaskOutput struct {
	SubTask model.SubTask
}

type UpdateSubTaskOutput struct {
	SubTask model.SubTask
}
