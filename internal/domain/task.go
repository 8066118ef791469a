package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyTitle         = errors.New("task title cannot be empty or only whitespace")
	ErrTitleTooLong       = errors.New("task title must be at most 200 characters long")
	ErrDescriptionTooLong = errors.New("task description must be at most 1000 characters long")
	ErrMissingOwner       = errors.New("task must belong to a user")
)

// Task is a single to-do item owned by exactly one user. The owner never
// changes after creation.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Done        bool      `json:"done"`
	Tags        []*Tag    `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a Task for the given owner. Title and description are
// normalized per the field rules; the ID is assigned by the store on insert.
func NewTask(userID int64, title, description string) (*Task, error) {
	if userID <= 0 {
		return nil, ErrMissingOwner
	}
	normalizedTitle, err := NormalizeTitle(title)
	if err != nil {
		return nil, err
	}
	normalizedDesc, err := NormalizeDescription(description)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Task{
		UserID:      userID,
		Title:       normalizedTitle,
		Description: normalizedDesc,
		Done:        false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// OwnerID returns the ID of the user owning this task.
func (t *Task) OwnerID() int64 {
	return t.UserID
}

// NormalizeTitle trims a task title and validates it is non-empty and within
// the length limit.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > 200 {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// NormalizeDescription trims a task description. An empty result becomes
// absent (nil) rather than an empty string.
func NormalizeDescription(description string) (*string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(description) > 1000 {
		return nil, ErrDescriptionTooLong
	}
	return &description, nil
}
