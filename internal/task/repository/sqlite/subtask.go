package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"agentic-task-planner/internal/model"
	repo "agentic-task-planner/internal/task/repository"
)

// CreateSubTask inserts a new SubTask row and returns the created entity.
func (r *implRepository) CreateSubTask(ctx context.Context, opt repo.CreateSubTaskOptions) (model.SubTask, error) {
	const query = `
		INSERT INTO subtasks (id, task_id, title, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	now := time.Now()
	st := model.SubTask{
		ID:        uuid.NewString(),
		TaskID:    opt.TaskID,
		Title:     opt.Title,
		Status:    model.TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx, query,
		st.ID, st.TaskID, st.Title, st.Status, st.CreatedAt, st.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSubTask"), err)
		return model.SubTask{}, repo.ErrFailedToInsert
	}
	return st, nil
}

// GetOneSubTask retrieves a single SubTask by ID.
// Returns zero-value SubTask (ID == "") when not found.
func (r *implRepository) GetOneSubTask(ctx context.Context, id string) (model.SubTask, error) {
	const query = `
		SELECT id, task_id, title, status, created_at, updated_at
		FROM subtasks WHERE id = ? LIMIT 1`

	var st model.SubTask
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&st.ID, &st.TaskID, &st.Title, &st.Status, &st.CreatedAt, &st.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.SubTask{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSubTask"), err)
		return model.SubTask{}, repo.ErrFailedToGet
	}
	return st, nil
}

// ListSubTasks returns all SubTasks of a Task, oldest first.
func (r *implRepository) ListSubTasks(ctx context.Context, taskID string) ([]model.SubTask, error) {
	const query = `
		SELECT id, task_id, title, status, created_at, updated_at
		FROM subtasks WHERE task_id = ? ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSubTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var subtasks []model.SubTask
	for rows.Next() {
		var st model.SubTask
		if err := rows.Scan(&st.ID, &st.TaskID, &st.Title, &st.Status, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		subtasks = append(subtasks, st)
	}
	return subtasks, nil
}

// UpdateSubTask updates a SubTask by ID and returns the updated entity.
func (r *implRepository) UpdateSubTask(ctx context.Context, opt repo.UpdateSubTaskOptions) (model.SubTask, error) {
	const query = `
		UPDATE subtasks
		SET title = ?, status = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.Title, opt.Status, time.Now(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSubTask"), err)
		return model.SubTask{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.SubTask{}, nil
	}
	return r.GetOneSubTask(ctx, opt.ID)
}
