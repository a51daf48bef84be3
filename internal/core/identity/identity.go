package identity

import (
	"context"
	"errors"
)

// Anonymous is the user id of an unauthenticated caller.
const Anonymous int64 = 0

// Sentinel errors for authorization failures
var (
	// ErrUnauthorized is returned when no identity could be resolved
	// for a state-changing operation
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when the caller is authenticated but is
	// not the owner of the resource being mutated
	ErrForbidden = errors.New("caller is not the resource owner")
)

type contextKey struct{}

// WithUserID returns a context carrying the acting user's id.
// The session middleware calls this once per request.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// FromContext resolves the acting user id from the request context.
// Returns Anonymous when no identity is present.
func FromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(contextKey{}).(int64); ok {
		return id
	}
	return Anonymous
}

// Require resolves the acting user id and fails with ErrUnauthorized
// for anonymous callers. Every state-changing service operation goes
// through this gate.
func Require(ctx context.Context) (int64, error) {
	id := FromContext(ctx)
	if id == Anonymous {
		return Anonymous, ErrUnauthorized
	}
	return id, nil
}
