package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/calverly/taskdeck-api/internal/api/middleware"
	"github.com/calverly/taskdeck-api/internal/api/shared"
	"github.com/calverly/taskdeck-api/internal/domain"
)

// requirePrincipal extracts the authenticated user from the request context.
// Writes a 401 and returns false if the auth middleware did not run.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok || principal == nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return principal, true
}

// parseIDParam reads the {id} URL parameter as a positive integer.
// Writes a 400 and returns false on malformed input.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return id, true
}
