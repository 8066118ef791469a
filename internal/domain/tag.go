package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

var (
	ErrTagNameTooShort = errors.New("tag name must be at least 3 characters long")
	ErrTagNameTooLong  = errors.New("tag name must be at most 50 characters long")
)

// Tag is a user-owned label attached to tasks via a many-to-many relation.
type Tag struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTag creates a Tag for the given owner. The ID is assigned by the store
// on insert.
func NewTag(userID int64, name string) (*Tag, error) {
	if userID <= 0 {
		return nil, ErrMissingOwner
	}
	if err := ValidateTagName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Tag{
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// OwnerID returns the ID of the user owning this tag.
func (t *Tag) OwnerID() int64 {
	return t.UserID
}

// ValidateTagName checks a tag name against the length limits. Limits count
// characters, not bytes.
func ValidateTagName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 3 {
		return ErrTagNameTooShort
	}
	if n > 50 {
		return ErrTagNameTooLong
	}
	return nil
}
