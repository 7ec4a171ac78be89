package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"agentic-task-planner/internal/task/repository"
	"agentic-task-planner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

// Migrate creates the task tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS tasks (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL DEFAULT 'pending',
			due_date    TIMESTAMP,
			created_at  TIMESTAMP NOT NULL,
			updated_at  TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS subtasks (
			id         TEXT PRIMARY KEY,
			task_id    TEXT NOT NULL REFERENCES tasks (id) ON DELETE CASCADE,
			title      TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks (status);
		CREATE INDEX IF NOT EXISTS idx_subtasks_task_id ON subtasks (task_id);`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("task/repository/sqlite: migrate: %w", err)
	}
	return nil
}
