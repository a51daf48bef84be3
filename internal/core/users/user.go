package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a user id has no row.
var ErrNotFound = errors.New("user not found")

// User is a team member. Accounts are provisioned by the identity
// provider; this service only ever reads them.
type User struct {
	Name        string `json:"name" db:"name"`
	SlackHandle string `json:"slackHandle" db:"slack_handle"`
	ID          int64  `json:"id" db:"id"`
}

// Repository defines read access to users
type Repository interface {
	// Get retrieves a user by id
	Get(ctx context.Context, id int64) (*User, error)
}
