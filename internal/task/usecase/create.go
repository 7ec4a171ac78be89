package usecase

import (
	"context"

	"agentic-task-planner/internal/task"
	"agentic-task-planner/internal/task/repository"
)

// Create inserts a new task in pending state.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.CreateTask: %v", logPrefixTask, err)
		return task.CreateTaskOutput{}, err
	}

	uc.l.Infof(ctx, "%s: created task id=%s", logPrefixTask, created.ID)
	return task.CreateTaskOutput{Task: created}, nil
}
