package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Common validation errors
var (
	ErrUsernameTooShort    = errors.New("username must be at least 3 characters long")
	ErrUsernameTooLong     = errors.New("username must be at most 50 characters long")
	ErrInvalidUsername     = errors.New("username may only contain letters, numbers, hyphens, and underscores")
	ErrUsernameEdgeChars   = errors.New("username cannot start or end with hyphens or underscores")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 128 characters long")
	ErrPasswordNoUpper     = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower     = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain at least one number")
	ErrPasswordNoSymbol    = errors.New(`password must contain at least one special character (!@#$%^&*(),.?":{}|<>)`)
	ErrPasswordTooCommon   = errors.New("password is too common, please choose a stronger password")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// passwordSymbols is the fixed punctuation set a password must draw at least
// one character from.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// weakPasswords is a denylist of passwords rejected regardless of their
// character composition. Checked case-insensitively.
var weakPasswords = map[string]struct{}{
	"password":    {},
	"12345678":    {},
	"password123": {},
	"admin123":    {},
}

// User represents a registered account. Identity is immutable once created;
// the username is stored in its normalized (lowercase) form.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext, used transiently during registration
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User from a raw username and password. The username is
// normalized before validation. The ID is assigned by the store on insert.
//
// NOTE: Only the plaintext password is set here. The caller is responsible
// for hashing it before the user is persisted.
func NewUser(username, password string) (*User, error) {
	normalized, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		Username:  normalized,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizeUsername validates a raw username and returns its canonical
// lowercase form. Normalization is idempotent: normalizing an already
// normalized username returns it unchanged.
func NormalizeUsername(username string) (string, error) {
	if utf8.RuneCountInString(username) < 3 {
		return "", ErrUsernameTooShort
	}
	if utf8.RuneCountInString(username) > 50 {
		return "", ErrUsernameTooLong
	}
	if !usernamePattern.MatchString(username) {
		return "", ErrInvalidUsername
	}
	if strings.HasPrefix(username, "-") || strings.HasPrefix(username, "_") ||
		strings.HasSuffix(username, "-") || strings.HasSuffix(username, "_") {
		return "", ErrUsernameEdgeChars
	}
	return strings.ToLower(username), nil
}

// ValidatePassword checks a plaintext password against the strength policy:
// 8-128 characters, not on the common-password denylist, with at least one
// uppercase letter, one lowercase letter, one digit, and one symbol from the
// fixed punctuation set.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}
	if utf8.RuneCountInString(password) > 128 {
		return ErrPasswordTooLong
	}

	if _, weak := weakPasswords[strings.ToLower(password)]; weak {
		return ErrPasswordTooCommon
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return ErrPasswordNoUpper
	case !hasLower:
		return ErrPasswordNoLower
	case !hasDigit:
		return ErrPasswordNoDigit
	case !hasSymbol:
		return ErrPasswordNoSymbol
	}

	return nil
}

// Validate checks a stored User for internal consistency.
func (u *User) Validate() error {
	if _, err := NormalizeUsername(u.Username); err != nil {
		return err
	}
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}
