package model

import "time"

// TaskStatus is the lifecycle state of a task or subtask.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is a user task tracked by the planner.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubTask is a smaller unit of work under a Task.
type SubTask struct {
	ID        string
	TaskID    string
	Title     string
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
