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

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db       store.DBTX
	tagStore store.TagStore
	logger   *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. The tag store is used to hydrate task tags on reads.
func NewPostgresTaskStore(db store.DBTX, tagStore store.TagStore, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:       db,
		tagStore: tagStore,
		logger:   logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (user_id, title, description, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.UserID,
		task.Title,
		task.Description,
		task.Done,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", task.UserID))
		return MapError(err)
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", task.UserID))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, done, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`
	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Done,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, MapError(err)
	}

	if err := s.loadTags(ctx, []*domain.Task{&task}); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByUser implements store.TaskStore.ListByUser
func (s *PostgresTaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, description, done, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Done,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if err := s.loadTags(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, done = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Done,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// ReplaceTags implements store.TaskStore.ReplaceTags
func (s *PostgresTaskStore) ReplaceTags(ctx context.Context, taskID int64, tagIDs []int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = $1`, taskID); err != nil {
		log.Error("failed to clear task tags",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return MapError(err)
	}

	for _, tagID := range tagIDs {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			taskID,
			tagID,
		)
		if err != nil {
			log.Error("failed to link tag to task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", taskID),
				slog.Int64("tag_id", tagID))
			return MapError(err)
		}
	}

	return nil
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	var tagStore store.TagStore
	if s.tagStore != nil {
		tagStore = s.tagStore.WithTx(tx)
	}
	return &PostgresTaskStore{
		db:       tx,
		tagStore: tagStore,
		logger:   s.logger,
	}
}

// loadTags hydrates the Tags field of the given tasks in one query.
func (s *PostgresTaskStore) loadTags(ctx context.Context, tasks []*domain.Task) error {
	if s.tagStore == nil || len(tasks) == 0 {
		return nil
	}

	ids := make([]int64, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}

	byTask, err := s.tagStore.ListByTasks(ctx, ids)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if tags, ok := byTask[task.ID]; ok {
			task.Tags = tags
		} else {
			task.Tags = []*domain.Tag{}
		}
	}
	return nil
}
