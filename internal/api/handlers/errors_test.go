package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamlog/internal/core/comments"
	"teamlog/internal/core/identity"
	"teamlog/internal/core/posts"
	"teamlog/internal/core/users"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"unauthorized", identity.ErrUnauthorized, 401, "AuthRequired"},
		{"forbidden", identity.ErrForbidden, 403, "Forbidden"},
		{"post not found", posts.ErrNotFound, 404, "NotFound"},
		{"user not found", users.ErrNotFound, 404, "NotFound"},
		{"validation", posts.NewValidationError("title", "title is required"), 400, "InvalidRequest"},
		{"invalid kind", posts.ErrInvalidKind, 400, "InvalidRequest"},
		{"empty comment", comments.ErrEmptyBody, 400, "InvalidRequest"},
		{"storage failure", errors.New("pq: connection refused"), 500, "InternalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleServiceError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantType, decodeErrorBody(t, rec)["error"])
		})
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleServiceError(rec, errors.New("pq: password authentication failed for user"))

	raw := rec.Body.String()
	assert.NotContains(t, raw, "password")

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	assert.Equal(t, "Internal server error", body["message"])
}
