package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agentic-task-planner/internal/model"
	repo "agentic-task-planner/internal/task/repository"
)

const taskColumns = "id, title, description, status, due_date, created_at, updated_at"

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, title, description, status, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := time.Now()
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		Status:      model.TaskStatusPending,
		DueDate:     opt.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, t.Status, t.DueDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = ? LIMIT 1", taskColumns)

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListWhere(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY %s LIMIT ? OFFSET ?",
		taskColumns, where, orderBy,
	)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// UpdateTask updates a Task by ID and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, due_date = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, opt.Status, opt.DueDate, time.Now(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, opt.ID)
}

// DeleteTask removes a Task by ID. Subtasks go with it.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// buildListWhere builds the WHERE clause + args for ListTasks.
func (r *implRepository) buildListWhere(opt repo.ListTasksOptions) (string, []any) {
	if opt.Status != "" {
		return "status = ?", []any{opt.Status}
	}
	return "1=1", nil
}
