package service

import (
	"context"
	"errors"

	"github.com/calverly/taskdeck-api/internal/domain"
)

// ErrNotOwner indicates the authenticated principal does not own the
// requested resource.
var ErrNotOwner = errors.New("principal does not own this resource")

// Owned is implemented by any resource bound to an owning user.
type Owned interface {
	OwnerID() int64
}

// Authorize loads a resource by ID and enforces that the principal owns it.
// Existence is checked before ownership: a missing resource surfaces the
// store's not-found error, and only a resource that exists but belongs to
// someone else yields ErrNotOwner. The 404-before-403 ordering is
// deliberate.
func Authorize[R Owned](
	ctx context.Context,
	principal *domain.User,
	id int64,
	load func(ctx context.Context, id int64) (R, error),
) (R, error) {
	resource, err := load(ctx, id)
	if err != nil {
		var zero R
		return zero, err
	}

	if resource.OwnerID() != principal.ID {
		var zero R
		return zero, ErrNotOwner
	}

	return resource, nil
}
