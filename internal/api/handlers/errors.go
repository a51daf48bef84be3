package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"net/http"

	"teamlog/internal/core/comments"
	"teamlog/internal/core/identity"
	"teamlog/internal/core/posts"
	"teamlog/internal/core/users"
)

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// HandleServiceError maps domain errors onto HTTP responses.
// Authorization, not-found and validation failures surface with their
// own statuses; anything else is a storage-level failure that gets
// logged in full and surfaces as a generic 500.
func HandleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, identity.ErrForbidden):
		WriteError(w, http.StatusForbidden, "Forbidden", "You are not the owner of this resource")
	case posts.IsNotFound(err), errors.Is(err, users.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	case posts.IsValidationError(err),
		errors.Is(err, posts.ErrInvalidKind),
		comments.IsEmptyBody(err):
		WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		slog.Error("request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
	}
}
