package stocks

import (
	"context"
	"time"
)

// Stock is a (user, post) bookmark relation, unique per pair.
type Stock struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// Service defines the business logic interface for bookmarks.
// Stock and Unstock are idempotent: repeating either call is a no-op,
// never an error, including under concurrent duplicates.
type Service interface {
	// Stock bookmarks a post for the caller
	Stock(ctx context.Context, postID int64) error

	// Unstock removes the caller's bookmark, if any
	Unstock(ctx context.Context, postID int64) error

	// IsStocked reports whether the caller has bookmarked the post
	IsStocked(ctx context.Context, postID int64) (bool, error)

	// Count returns how many posts the caller has bookmarked
	Count(ctx context.Context) (int, error)
}

// Repository defines the data access interface for bookmarks.
// Add must absorb duplicate inserts and Remove absent rows without
// error; the store's unique constraint carries the idempotency.
type Repository interface {
	Add(ctx context.Context, userID, postID int64) error
	Remove(ctx context.Context, userID, postID int64) error
	Exists(ctx context.Context, userID, postID int64) (bool, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}
