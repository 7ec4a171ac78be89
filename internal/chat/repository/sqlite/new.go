package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"agentic-task-planner/internal/chat/repository"
	"agentic-task-planner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the chat domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("chat/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/sqlite.%s", method)
}

// Migrate creates the chat tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS llm_responses (
			id         TEXT PRIMARY KEY,
			prompt     TEXT NOT NULL,
			response   TEXT NOT NULL,
			task_id    TEXT,
			subtask_id TEXT,
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_llm_responses_task_id ON llm_responses (task_id);
		CREATE INDEX IF NOT EXISTS idx_llm_responses_created_at ON llm_responses (created_at);`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("chat/repository/sqlite: migrate: %w", err)
	}
	return nil
}
