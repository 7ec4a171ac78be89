package usecase

import "agentic-task-planner/internal/model"

// parseStatus validates a status string. Empty means "keep current".
func parseStatus(s string) (model.TaskStatus, bool) {
	switch model.TaskStatus(s) {
	case model.TaskStatusPending, model.TaskStatusInProgress, model.TaskStatusDone:
		return model.TaskStatus(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}
