package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask(7, "  Buy milk  ", "  from the corner shop  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.UserID != 7 {
		t.Errorf("Expected owner 7, got %d", task.UserID)
	}

	if task.Title != "Buy milk" {
		t.Errorf("Expected trimmed title, got %q", task.Title)
	}

	if task.Description == nil || *task.Description != "from the corner shop" {
		t.Errorf("Expected trimmed description, got %v", task.Description)
	}

	if task.Done {
		t.Error("Expected new task to start not done")
	}

	if task.ID != 0 {
		t.Errorf("Expected zero ID before insert, got %d", task.ID)
	}

	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

func TestNewTaskRequiresOwner(t *testing.T) {
	_, err := NewTask(0, "Buy milk", "")
	if !errors.Is(err, ErrMissingOwner) {
		t.Errorf("Expected %v, got %v", ErrMissingOwner, err)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		want    string
		wantErr error
	}{
		{"plain", "Buy milk", "Buy milk", nil},
		{"trims surrounding whitespace", "\t Buy milk \n", "Buy milk", nil},
		{"maximum length", strings.Repeat("a", 200), strings.Repeat("a", 200), nil},
		{"multibyte counted as characters", strings.Repeat("é", 200), strings.Repeat("é", 200), nil},
		{"multibyte over limit", strings.Repeat("é", 201), "", ErrTitleTooLong},
		{"empty", "", "", ErrEmptyTitle},
		{"whitespace only", "   \t", "", ErrEmptyTitle},
		{"too long", strings.Repeat("a", 201), "", ErrTitleTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeTitle(tc.title)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeDescription(t *testing.T) {
	got, err := NormalizeDescription("  details  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil || *got != "details" {
		t.Errorf("Expected trimmed description, got %v", got)
	}

	got, err = NormalizeDescription("   ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected whitespace-only description to become absent, got %q", *got)
	}

	_, err = NormalizeDescription(strings.Repeat("a", 1001))
	if !errors.Is(err, ErrDescriptionTooLong) {
		t.Errorf("Expected %v, got %v", ErrDescriptionTooLong, err)
	}

	got, err = NormalizeDescription(strings.Repeat("é", 1000))
	if err != nil {
		t.Fatalf("Expected 1000 multibyte characters to be accepted, got %v", err)
	}
	if got == nil {
		t.Error("Expected a non-nil description")
	}
}

func TestTaskOwnerID(t *testing.T) {
	task := Task{ID: 1, UserID: 42}
	if task.OwnerID() != 42 {
		t.Errorf("Expected owner 42, got %d", task.OwnerID())
	}
}
