package comments

import (
	"context"
	"errors"
	"time"

	"teamlog/internal/core/posts"
)

// ErrEmptyBody is returned when a comment has no content.
var ErrEmptyBody = errors.New("comment body is required")

// Comment is an append-only remark on a post. Comments are never
// edited or deleted individually; they go away with their post.
type Comment struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Body       string    `json:"body" db:"body"`
	AuthorName string    `json:"authorName" db:"author_name"`
	ID         int64     `json:"id" db:"id"`
	PostID     int64     `json:"postId" db:"post_id"`
	AuthorID   int64     `json:"authorId" db:"user_id"`
}

// Service defines the business logic interface for comments
type Service interface {
	// Add appends a comment to a post and dispatches a "New comment"
	// notification. Fails with posts.ErrNotFound when the post is
	// absent.
	Add(ctx context.Context, postID int64, body string) (int64, error)

	// ListByPost returns a post's comments, oldest first
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, comment *Comment) (int64, error)
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// PostGetter is the slice of the post repository the comment service
// needs to verify the target post and build the notification link.
type PostGetter interface {
	Get(ctx context.Context, id int64) (*posts.Post, error)
}

// IsEmptyBody checks if error is the empty-body validation error
func IsEmptyBody(err error) bool {
	return errors.Is(err, ErrEmptyBody)
}
