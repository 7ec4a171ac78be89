package usecase

import (
	"agentic-task-planner/internal/task"
	"agentic-task-planner/internal/task/repository"
	"agentic-task-planner/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
