package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/calverly/taskdeck-api/internal/domain"
	"github.com/calverly/taskdeck-api/internal/service"
	"github.com/calverly/taskdeck-api/internal/service/auth"
	"github.com/calverly/taskdeck-api/internal/store"
)

// validationErrors are the domain field-rule violations that map to 422.
var validationErrors = []error{
	domain.ErrUsernameTooShort,
	domain.ErrUsernameTooLong,
	domain.ErrInvalidUsername,
	domain.ErrUsernameEdgeChars,
	domain.ErrPasswordTooShort,
	domain.ErrPasswordTooLong,
	domain.ErrPasswordNoUpper,
	domain.ErrPasswordNoLower,
	domain.ErrPasswordNoDigit,
	domain.ErrPasswordNoSymbol,
	domain.ErrPasswordTooCommon,
	domain.ErrEmptyTitle,
	domain.ErrTitleTooLong,
	domain.ErrDescriptionTooLong,
	domain.ErrTagNameTooShort,
	domain.ErrTagNameTooLong,
}

// isValidationError reports whether err is a domain field-rule violation.
func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// Note the error taxonomy: validation failures are 422, duplicate unique
// fields are 400, missing resources 404, and ownership violations 403. The
// ownership guard checks existence before ownership, so the two stay
// distinguishable.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate unique fields
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	// Field-rule violations
	case isValidationError(err):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, service.ErrNotOwner):
		return "You are not the owner of this resource"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrTagNotFound):
		return "Tag not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	// Domain validation messages are written for end users and safe to
	// return verbatim.
	case isValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError converts a go-playground/validator error into a
// user-friendly message without echoing raw input back.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'SignUpRequest.Username' Error:Field
		// validation for 'Username' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
