package usecase

const (
	logPrefixTask    = "internal.task.usecase"
	logPrefixSubTask = "internal.task.usecase.subtask"
)
