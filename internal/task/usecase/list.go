package usecase

import (
	"context"

	"agentic-task-planner/internal/task"
	"agentic-task-planner/internal/task/repository"
)

// List returns a filtered, paginated page of tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if _, ok := parseStatus(input.Status); !ok {
		return task.ListTasksOutput{}, task.ErrInvalidStatus
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.ListTasks: %v", logPrefixTask, err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
