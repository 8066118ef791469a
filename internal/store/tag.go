package store

import (
	"context"
	"database/sql"

	"github.com/calverly/taskdeck-api/internal/domain"
)

// TagStore defines the interface for tag data persistence.
type TagStore interface {
	// Create saves a new tag to the store and assigns its ID.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, tag *domain.Tag) error

	// GetByID retrieves a tag by its unique ID.
	// Returns ErrTagNotFound if the tag does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)

	// ListByUser retrieves all tags owned by the given user, newest first
	// (descending ID).
	ListByUser(ctx context.Context, userID int64) ([]*domain.Tag, error)

	// ListByTasks retrieves the tags linked to each of the given tasks,
	// keyed by task ID. Tasks with no tags are absent from the map.
	ListByTasks(ctx context.Context, taskIDs []int64) (map[int64][]*domain.Tag, error)

	// Update persists the tag's name.
	// Returns ErrTagNotFound if the tag does not exist.
	Update(ctx context.Context, tag *domain.Tag) error

	// Delete removes a tag from the store by its ID. Task links are removed
	// by the schema's ON DELETE CASCADE.
	// Returns ErrTagNotFound if the tag does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TagStore that executes against the given
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TagStore
}
