package store

import (
	"context"
	"database/sql"

	"github.com/calverly/taskdeck-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID, including its tags.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListByUser retrieves all tasks owned by the given user, newest first
	// (descending ID), with tags loaded.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// Update persists the task's title, description, and done flag.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID. Tag links are removed
	// by the schema's ON DELETE CASCADE.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// ReplaceTags replaces the full set of tags linked to the task.
	// Callers are responsible for verifying tag ownership beforehand.
	ReplaceTags(ctx context.Context, taskID int64, tagIDs []int64) error

	// WithTx returns a TaskStore that executes against the given
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
