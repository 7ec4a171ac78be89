package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error

	// Subtasks
	CreateSubTask(ctx context.Context, input CreateSubTaskInput) (CreateSubTaskOutput, error)
	UpdateSubTask(ctx context.Context, input UpdateSubTaskInput) (UpdateSubTaskOutput, error)
}
