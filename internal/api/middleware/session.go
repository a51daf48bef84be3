package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"

	"teamlog/internal/core/identity"
)

const (
	// SessionName is the cookie holding the team session.
	SessionName = "teamlog_session"

	// sessionUserKey is the session value carrying the user id.
	sessionUserKey = "user_id"
)

// SessionAuth resolves the acting user from the session cookie issued
// by the identity provider and injects it into the request context.
// It never rejects a request: anonymous callers pass through with no
// identity and fail later at the service-level authorization gate.
type SessionAuth struct {
	store sessions.Store
}

// NewSessionAuth creates session middleware over a cookie store signed
// with secret.
func NewSessionAuth(secret string) *SessionAuth {
	return &SessionAuth{store: sessions.NewCookieStore([]byte(secret))}
}

// NewSessionAuthWithStore creates session middleware over an explicit
// store. Used by tests.
func NewSessionAuthWithStore(store sessions.Store) *SessionAuth {
	return &SessionAuth{store: store}
}

// Resolve populates the request context with the session identity.
func (s *SessionAuth) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A broken or missing cookie reads as anonymous, not an error.
		session, err := s.store.Get(r, SessionName)
		if err == nil {
			if userID, ok := session.Values[sessionUserKey].(int64); ok && userID != identity.Anonymous {
				r = r.WithContext(identity.WithUserID(r.Context(), userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}
