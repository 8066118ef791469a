package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/calverly/taskdeck-api/internal/domain"
	"github.com/calverly/taskdeck-api/internal/platform/logger"
	"github.com/calverly/taskdeck-api/internal/store"
)

// PostgresTagStore implements the store.TagStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTagStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTagStore creates a new PostgreSQL implementation of the
// TagStore interface.
func NewPostgresTagStore(db store.DBTX, logger *slog.Logger) *PostgresTagStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTagStore{
		db:     db,
		logger: logger.With(slog.String("component", "tag_store")),
	}
}

// Ensure PostgresTagStore implements store.TagStore interface
var _ store.TagStore = (*PostgresTagStore)(nil)

// Create implements store.TagStore.Create
func (s *PostgresTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tags (user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		tag.UserID,
		tag.Name,
		tag.CreatedAt,
		tag.UpdatedAt,
	).Scan(&tag.ID)

	if err != nil {
		log.Error("failed to create tag",
			slog.String("error", err.Error()),
			slog.Int64("user_id", tag.UserID))
		return MapError(err)
	}

	log.Debug("tag created",
		slog.Int64("tag_id", tag.ID),
		slog.Int64("user_id", tag.UserID))
	return nil
}

// GetByID implements store.TagStore.GetByID
func (s *PostgresTagStore) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM tags
		WHERE id = $1
	`
	var tag domain.Tag
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tag.ID,
		&tag.UserID,
		&tag.Name,
		&tag.CreatedAt,
		&tag.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTagNotFound
		}
		return nil, MapError(err)
	}
	return &tag, nil
}

// ListByUser implements store.TagStore.ListByUser
func (s *PostgresTagStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Tag, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM tags
		WHERE user_id = $1
		ORDER BY id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list tags",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(
			&tag.ID,
			&tag.UserID,
			&tag.Name,
			&tag.CreatedAt,
			&tag.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tags, nil
}

// ListByTasks implements store.TagStore.ListByTasks
func (s *PostgresTagStore) ListByTasks(ctx context.Context, taskIDs []int64) (map[int64][]*domain.Tag, error) {
	byTask := make(map[int64][]*domain.Tag)
	if len(taskIDs) == 0 {
		return byTask, nil
	}

	// The pgx stdlib driver binds an int64 slice to a single ANY($1)
	// parameter.
	query := `
		SELECT tt.task_id, t.id, t.user_id, t.name, t.created_at, t.updated_at
		FROM task_tags tt
		JOIN tags t ON t.id = tt.tag_id
		WHERE tt.task_id = ANY($1)
		ORDER BY t.id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, taskIDs)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var taskID int64
		var tag domain.Tag
		if err := rows.Scan(
			&taskID,
			&tag.ID,
			&tag.UserID,
			&tag.Name,
			&tag.CreatedAt,
			&tag.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		byTask[taskID] = append(byTask[taskID], &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return byTask, nil
}

// Update implements store.TagStore.Update
func (s *PostgresTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE tags SET name = $1, updated_at = $2 WHERE id = $3`,
		tag.Name,
		tag.UpdatedAt,
		tag.ID,
	)
	if err != nil {
		log.Error("failed to update tag",
			slog.String("error", err.Error()),
			slog.Int64("tag_id", tag.ID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTagNotFound)
}

// Delete implements store.TagStore.Delete
func (s *PostgresTagStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete tag",
			slog.String("error", err.Error()),
			slog.Int64("tag_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTagNotFound)
}

// WithTx implements store.TagStore.WithTx
func (s *PostgresTagStore) WithTx(tx *sql.Tx) store.TagStore {
	return &PostgresTagStore{
		db:     tx,
		logger: s.logger,
	}
}
