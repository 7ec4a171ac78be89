package usecase

import (
	"context"

	"agentic-task-planner/internal/task"
	"agentic-task-planner/internal/task/repository"
)

// CreateSubTask adds a subtask under an existing task.
func (uc *implUseCase) CreateSubTask(ctx context.Context, input task.CreateSubTaskInput) (task.CreateSubTaskOutput, error) {
	parent, err := uc.repo.GetOneTask(ctx, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.GetOneTask: %v", logPrefixSubTask, err)
		return task.CreateSubTaskOutput{}, err
	}
	if parent.ID == "" {
		return task.CreateSubTaskOutput{}, task.ErrTaskNotFound
	}

	created, err := uc.repo.CreateSubTask(ctx, repository.CreateSubTaskOptions{
		TaskID: parent.ID,
		Title:  input.Title,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.CreateSubTask: %v", logPrefixSubTask, err)
		return task.CreateSubTaskOutput{}, err
	}

	return task.CreateSubTaskOutput{SubTask: created}, nil
}

// UpdateSubTask applies a partial update to a subtask.
func (uc *implUseCase) UpdateSubTask(ctx context.Context, input task.UpdateSubTaskInput) (task.UpdateSubTaskOutput, error) {
	status, ok := parseStatus(input.Status)
	if !ok {
		return task.UpdateSubTaskOutput{}, task.ErrInvalidStatus
	}

	current, err := uc.repo.GetOneSubTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.GetOneSubTask: %v", logPrefixSubTask, err)
		return task.UpdateSubTaskOutput{}, err
	}
	if current.ID == "" {
		return task.UpdateSubTaskOutput{}, task.ErrSubTaskNotFound
	}

	opt := repository.UpdateSubTaskOptions{
		ID:     current.ID,
		Title:  current.Title,
		Status: current.Status,
	}
	if input.Title != "" {
		opt.Title = input.Title
	}
	if status != "" {
		opt.Status = status
	}

	updated, err := uc.repo.UpdateSubTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.UpdateSubTask: %v", logPrefixSubTask, err)
		return task.UpdateSubTaskOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateSubTaskOutput{}, task.ErrSubTaskNotFound
	}

	return task.UpdateSubTaskOutput{SubTask: updated}, nil
}
