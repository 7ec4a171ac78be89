package usecase

import (
	"context"

	"agentic-task-planner/internal/task"
	"agentic-task-planner/internal/task/repository"
)

// Detail returns one task with its subtasks.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.GetOneTask: %v", logPrefixTask, err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}

	subtasks, err := uc.repo.ListSubTasks(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.ListSubTasks: %v", logPrefixTask, err)
		return task.DetailTaskOutput{}, err
	}

	return task.DetailTaskOutput{Task: t, SubTasks: subtasks}, nil
}

// Update applies a partial update. Empty fields keep their stored value.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	status, ok := parseStatus(input.Status)
	if !ok {
		return task.UpdateTaskOutput{}, task.ErrInvalidStatus
	}

	current, err := uc.repo.GetOneTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.GetOneTask: %v", logPrefixTask, err)
		return task.UpdateTaskOutput{}, err
	}
	if current.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	opt := repository.UpdateTaskOptions{
		ID:          current.ID,
		Title:       current.Title,
		Description: current.Description,
		Status:      current.Status,
		DueDate:     current.DueDate,
	}
	if input.Title != "" {
		opt.Title = input.Title
	}
	if input.Description != "" {
		opt.Description = input.Description
	}
	if status != "" {
		opt.Status = status
	}
	if input.DueDate != nil {
		opt.DueDate = input.DueDate
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.UpdateTask: %v", logPrefixTask, err)
		return task.UpdateTaskOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a task and its subtasks.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.GetOneTask: %v", logPrefixTask, err)
		return err
	}
	if t.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "%s: repo.DeleteTask: %v", logPrefixTask, err)
		return err
	}

	uc.l.Infof(ctx, "%s: deleted task id=%s", logPrefixTask, id)
	return nil
}
