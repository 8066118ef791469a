package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/calverly/taskdeck-api/internal/domain"
	"github.com/calverly/taskdeck-api/internal/store"
)

// MockTagStore implements store.TagStore for testing
type MockTagStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, tag *domain.Tag) error
	GetByIDFn     func(ctx context.Context, id int64) (*domain.Tag, error)
	ListByUserFn  func(ctx context.Context, userID int64) ([]*domain.Tag, error)
	ListByTasksFn func(ctx context.Context, taskIDs []int64) (map[int64][]*domain.Tag, error)
	UpdateFn      func(ctx context.Context, tag *domain.Tag) error
	DeleteFn      func(ctx context.Context, id int64) error

	// Data for default implementation, keyed by tag ID
	Tags map[int64]*domain.Tag

	nextID int64
}

// NewMockTagStore creates a new mock store with initialized defaults
func NewMockTagStore() *MockTagStore {
	return &MockTagStore{
		Tags: make(map[int64]*domain.Tag),
	}
}

// Create implements the store.TagStore interface
func (m *MockTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tag)
	}

	m.nextID++
	tag.ID = m.nextID
	m.Tags[tag.ID] = tag
	return nil
}

// GetByID implements the store.TagStore interface
func (m *MockTagStore) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if tag, ok := m.Tags[id]; ok {
		return tag, nil
	}
	return nil, store.ErrTagNotFound
}

// ListByUser implements the store.TagStore interface
func (m *MockTagStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Tag, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	tags := []*domain.Tag{}
	for _, tag := range m.Tags {
		if tag.UserID == userID {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID > tags[j].ID })
	return tags, nil
}

// ListByTasks implements the store.TagStore interface
func (m *MockTagStore) ListByTasks(ctx context.Context, taskIDs []int64) (map[int64][]*domain.Tag, error) {
	if m.ListByTasksFn != nil {
		return m.ListByTasksFn(ctx, taskIDs)
	}

	return map[int64][]*domain.Tag{}, nil
}

// Update implements the store.TagStore interface
func (m *MockTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, tag)
	}

	if _, ok := m.Tags[tag.ID]; !ok {
		return store.ErrTagNotFound
	}
	m.Tags[tag.ID] = tag
	return nil
}

// Delete implements the store.TagStore interface
func (m *MockTagStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Tags[id]; !ok {
		return store.ErrTagNotFound
	}
	delete(m.Tags, id)
	return nil
}

// WithTx implements the store.TagStore interface
func (m *MockTagStore) WithTx(tx *sql.Tx) store.TagStore {
	return m
}
