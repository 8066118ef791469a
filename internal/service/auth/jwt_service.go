// Package auth provides the authentication primitives of the application:
// bearer-token issuance/validation and password hashing.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
//
// Tokens are stateless: there is no revocation list, so a leaked token
// remains valid until its natural expiry. This is an accepted limitation of
// the design, not a bug.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given subject
	// (the user's normalized username).
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns ErrExpiredToken for expired tokens and
	// ErrInvalidToken for malformed tokens or bad signatures.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the claims carried by an access token.
type Claims struct {
	// Subject is the normalized username the token was issued for.
	Subject string `json:"sub,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
