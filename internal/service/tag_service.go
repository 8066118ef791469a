package service

import (
	"context"
	"log/slog"

	"github.com/calverly/taskdeck-api/internal/domain"
	"github.com/calverly/taskdeck-api/internal/store"
)

// TagService implements principal-scoped tag operations.
type TagService struct {
	tagStore store.TagStore
	logger   *slog.Logger
}

// NewTagService creates a new TagService.
func NewTagService(tagStore store.TagStore, logger *slog.Logger) *TagService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TagService{
		tagStore: tagStore,
		logger:   logger.With(slog.String("component", "tag_service")),
	}
}

// List returns all tags owned by the principal, newest first.
func (s *TagService) List(ctx context.Context, principal *domain.User) ([]*domain.Tag, error) {
	return s.tagStore.ListByUser(ctx, principal.ID)
}

// Get returns the tag with the given ID if the principal owns it.
func (s *TagService) Get(ctx context.Context, principal *domain.User, id int64) (*domain.Tag, error) {
	return Authorize(ctx, principal, id, s.tagStore.GetByID)
}

// Create validates the name and persists a new tag owned by the principal.
func (s *TagService) Create(ctx context.Context, principal *domain.User, name string) (*domain.Tag, error) {
	tag, err := domain.NewTag(principal.ID, name)
	if err != nil {
		return nil, err
	}
	if err := s.tagStore.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Update renames a tag the principal owns.
func (s *TagService) Update(
	ctx context.Context,
	principal *domain.User,
	id int64,
	name string,
) (*domain.Tag, error) {
	tag, err := Authorize(ctx, principal, id, s.tagStore.GetByID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTagName(name); err != nil {
		return nil, err
	}
	tag.Name = name

	if err := s.tagStore.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag the principal owns.
func (s *TagService) Delete(ctx context.Context, principal *domain.User, id int64) error {
	if _, err := Authorize(ctx, principal, id, s.tagStore.GetByID); err != nil {
		return err
	}
	return s.tagStore.Delete(ctx, id)
}
