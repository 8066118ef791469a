package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/calverly/taskdeck-api/internal/domain"
	"github.com/calverly/taskdeck-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, task *domain.Task) error
	GetByIDFn     func(ctx context.Context, id int64) (*domain.Task, error)
	ListByUserFn  func(ctx context.Context, userID int64) ([]*domain.Task, error)
	UpdateFn      func(ctx context.Context, task *domain.Task) error
	DeleteFn      func(ctx context.Context, id int64) error
	ReplaceTagsFn func(ctx context.Context, taskID int64, tagIDs []int64) error

	// Data for default implementation, keyed by task ID
	Tasks map[int64]*domain.Task

	// TagLinks records the tag IDs set per task by ReplaceTags
	TagLinks map[int64][]int64

	// TagSource, when set, resolves TagLinks into task.Tags on reads
	TagSource *MockTagStore

	nextID int64
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:    make(map[int64]*domain.Task),
		TagLinks: make(map[int64][]int64),
	}
}

// Create implements the store.TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.nextID++
	task.ID = m.nextID
	if task.Tags == nil {
		task.Tags = []*domain.Tag{}
	}
	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the store.TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if task, ok := m.Tasks[id]; ok {
		m.resolveTags(task)
		return task, nil
	}
	return nil, store.ErrTaskNotFound
}

// ListByUser implements the store.TaskStore interface
func (m *MockTaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	tasks := []*domain.Task{}
	for _, task := range m.Tasks {
		if task.UserID == userID {
			m.resolveTags(task)
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID > tasks[j].ID })
	return tasks, nil
}

// Update implements the store.TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if _, ok := m.Tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the store.TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	delete(m.TagLinks, id)
	return nil
}

// ReplaceTags implements the store.TaskStore interface
func (m *MockTaskStore) ReplaceTags(ctx context.Context, taskID int64, tagIDs []int64) error {
	if m.ReplaceTagsFn != nil {
		return m.ReplaceTagsFn(ctx, taskID, tagIDs)
	}

	m.TagLinks[taskID] = append([]int64{}, tagIDs...)
	return nil
}

// WithTx implements the store.TaskStore interface
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

func (m *MockTaskStore) resolveTags(task *domain.Task) {
	if m.TagSource == nil {
		return
	}
	tags := []*domain.Tag{}
	for _, tagID := range m.TagLinks[task.ID] {
		if tag, ok := m.TagSource.Tags[tagID]; ok {
			tags = append(tags, tag)
		}
	}
	task.Tags = tags
}
