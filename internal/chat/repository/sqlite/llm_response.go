package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "agentic-task-planner/internal/chat/repository"
	"agentic-task-planner/internal/model"
)

// CreateResponse inserts one prompt/response exchange and returns the
// created entity.
func (r *implRepository) CreateResponse(ctx context.Context, opt repo.CreateResponseOptions) (model.LLMResponse, error) {
	const query = `
		INSERT INTO llm_responses (id, prompt, response, task_id, subtask_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	entry := model.LLMResponse{
		ID:        uuid.NewString(),
		Prompt:    opt.Prompt,
		Response:  opt.Response,
		TaskID:    nullable(opt.TaskID),
		SubtaskID: nullable(opt.SubtaskID),
		CreatedAt: time.Now(),
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Prompt, entry.Response, entry.TaskID, entry.SubtaskID, entry.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateResponse"), err)
		return model.LLMResponse{}, repo.ErrFailedToInsert
	}
	return entry, nil
}

// ListResponses returns a paginated list of exchanges, newest first,
// and the total count.
func (r *implRepository) ListResponses(ctx context.Context, opt repo.ListResponsesOptions) ([]model.LLMResponse, int, error) {
	where, args := r.buildListWhere(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM llm_responses WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListResponses"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`
		SELECT id, prompt, response, task_id, subtask_id, created_at
		FROM llm_responses
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`, where)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListResponses"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.LLMResponse
	for rows.Next() {
		var entry model.LLMResponse
		if err := rows.Scan(&entry.ID, &entry.Prompt, &entry.Response, &entry.TaskID, &entry.SubtaskID, &entry.CreatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}

// buildListWhere builds the WHERE clause + args for ListResponses.
func (r *implRepository) buildListWhere(opt repo.ListResponsesOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.TaskID != "" {
		conditions = append(conditions, "task_id = ?")
		args = append(args, opt.TaskID)
	}
	if opt.SubtaskID != "" {
		conditions = append(conditions, "subtask_id = ?")
		args = append(args, opt.SubtaskID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// nullable maps an empty string to a SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
