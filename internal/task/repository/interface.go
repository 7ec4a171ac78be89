package repository

import (
	"context"

	"agentic-task-planner/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	SubTaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// SubTaskRepository defines all data access methods for the SubTask entity.
type SubTaskRepository interface {
	CreateSubTask(ctx context.Context, opt CreateSubTaskOptions) (model.SubTask, error)
	GetOneSubTask(ctx context.Context, id string) (model.SubTask, error)
	ListSubTasks(ctx context.Context, taskID string) ([]model.SubTask, error)
	UpdateSubTask(ctx context.Context, opt UpdateSubTaskOptions) (model.SubTask, error)
}
