package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundHierarchy(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrTaskNotFound, ErrTagNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected %v to match ErrNotFound", err)
		}
		if !IsNotFoundError(err) {
			t.Errorf("Expected IsNotFoundError to report %v", err)
		}
	}

	wrapped := fmt.Errorf("loading task: %w", ErrTaskNotFound)
	if !IsNotFoundError(wrapped) {
		t.Error("Expected wrapped not-found error to be recognized")
	}

	if IsNotFoundError(ErrDuplicate) {
		t.Error("Expected ErrDuplicate not to read as not found")
	}
}

func TestDuplicateHierarchy(t *testing.T) {
	if !errors.Is(ErrUsernameExists, ErrDuplicate) {
		t.Error("Expected ErrUsernameExists to match ErrDuplicate")
	}
	if !IsDuplicateError(fmt.Errorf("insert: %w", ErrUsernameExists)) {
		t.Error("Expected wrapped duplicate error to be recognized")
	}
	if IsDuplicateError(ErrNotFound) {
		t.Error("Expected ErrNotFound not to read as duplicate")
	}
}
