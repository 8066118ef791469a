package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/calverly/taskdeck-api/internal/api/shared"
	"github.com/calverly/taskdeck-api/internal/domain"
	"github.com/calverly/taskdeck-api/internal/redact"
	"github.com/calverly/taskdeck-api/internal/service/auth"
	"github.com/calverly/taskdeck-api/internal/store"
)

// AuthMiddleware resolves the identity behind a bearer token. It validates
// the token, looks up the subject in the user store, and places the full
// user entity (the principal) in the request context so downstream
// ownership checks have the numeric identity available.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates JWT tokens from the Authorization header and adds
// the resolved principal to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}
		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		// The subject may have been deleted since the token was issued;
		// that still reads as unauthorized, not as a server fault.
		principal, err := m.userStore.GetByUsername(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Unknown token subject")
				return
			}
			slog.Error("failed to resolve token subject", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.PrincipalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal extracts the authenticated user from the request context.
// Returns the principal and a boolean indicating if it was found.
func GetPrincipal(r *http.Request) (*domain.User, bool) {
	principal, ok := r.Context().Value(shared.PrincipalContextKey).(*domain.User)
	return principal, ok
}
