package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/calverly/taskdeck-api/internal/domain"
	"github.com/calverly/taskdeck-api/internal/platform/logger"
	"github.com/calverly/taskdeck-api/internal/store"
)

// CreateTaskInput carries the validated-at-the-boundary fields for creating
// a task. The owner always comes from the principal, never from the input.
type CreateTaskInput struct {
	Title       string
	Description string
	TagIDs      []int64
}

// UpdateTaskInput carries a partial update: nil fields are left untouched.
// A non-nil TagIDs replaces the task's full tag set.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Done        *bool
	TagIDs      *[]int64
}

// TaskService implements principal-scoped task operations.
type TaskService struct {
	txRunner  store.TxRunner
	taskStore store.TaskStore
	tagStore  store.TagStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService. The TxRunner is used to run
// multi-statement mutations (task row + tag links) in one transaction.
func NewTaskService(
	txRunner store.TxRunner,
	taskStore store.TaskStore,
	tagStore store.TagStore,
	logger *slog.Logger,
) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskService{
		txRunner:  txRunner,
		taskStore: taskStore,
		tagStore:  tagStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// List returns all tasks owned by the principal, newest first.
func (s *TaskService) List(ctx context.Context, principal *domain.User) ([]*domain.Task, error) {
	return s.taskStore.ListByUser(ctx, principal.ID)
}

// Get returns the task with the given ID if the principal owns it.
func (s *TaskService) Get(ctx context.Context, principal *domain.User, id int64) (*domain.Task, error) {
	return Authorize(ctx, principal, id, s.taskStore.GetByID)
}

// Create validates the input and persists a new task owned by the principal.
// Referenced tags must exist and belong to the principal.
func (s *TaskService) Create(
	ctx context.Context,
	principal *domain.User,
	input CreateTaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(principal.ID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeTags(ctx, principal, input.TagIDs); err != nil {
		return nil, err
	}

	err = s.txRunner.RunTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)
		if err := txStore.Create(ctx, task); err != nil {
			return err
		}
		if len(input.TagIDs) > 0 {
			return txStore.ReplaceTags(ctx, task.ID, input.TagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", principal.ID))

	// Reload so the response reflects exactly what was committed.
	return s.taskStore.GetByID(ctx, task.ID)
}

// Update applies a partial update to a task the principal owns. Only
// supplied fields change; unset fields are untouched, not nulled.
func (s *TaskService) Update(
	ctx context.Context,
	principal *domain.User,
	id int64,
	input UpdateTaskInput,
) (*domain.Task, error) {
	task, err := Authorize(ctx, principal, id, s.taskStore.GetByID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := domain.NormalizeTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if input.Description != nil {
		desc, err := domain.NormalizeDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		task.Description = desc
	}
	if input.Done != nil {
		task.Done = *input.Done
	}

	if input.TagIDs != nil {
		if err := s.authorizeTags(ctx, principal, *input.TagIDs); err != nil {
			return nil, err
		}
	}

	err = s.txRunner.RunTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)
		if err := txStore.Update(ctx, task); err != nil {
			return err
		}
		if input.TagIDs != nil {
			return txStore.ReplaceTags(ctx, task.ID, *input.TagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.taskStore.GetByID(ctx, task.ID)
}

// Delete removes a task the principal owns.
func (s *TaskService) Delete(ctx context.Context, principal *domain.User, id int64) error {
	if _, err := Authorize(ctx, principal, id, s.taskStore.GetByID); err != nil {
		return err
	}
	return s.taskStore.Delete(ctx, id)
}

// authorizeTags verifies every referenced tag exists and belongs to the
// principal, using the same guard semantics as direct tag access.
func (s *TaskService) authorizeTags(ctx context.Context, principal *domain.User, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := Authorize(ctx, principal, tagID, s.tagStore.GetByID); err != nil {
			return err
		}
	}
	return nil
}
