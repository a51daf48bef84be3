package posts

import "context"

// Service defines the business logic interface for posts.
// Resolves the acting identity from the request context, enforces
// ownership, coordinates tag resolution and change notifications.
type Service interface {
	// Create inserts a new post with its resolved tag set.
	// A publish action dispatches a "New post" notification.
	Create(ctx context.Context, req CreateRequest) (int64, error)

	// Get retrieves a post with its tags
	Get(ctx context.Context, id int64) (*Post, error)

	// Update replaces title, body, status and the full tag set.
	// A publish action dispatches an "Edit post" notification carrying
	// the rendered body diff.
	Update(ctx context.Context, req UpdateRequest) error

	// Delete removes a post and its tag associations
	Delete(ctx context.Context, id int64) error

	// List returns one page of published posts of a kind, newest first
	List(ctx context.Context, kind Kind, page int) (*Listing, error)

	// Feed returns one page across all kinds, newest first
	Feed(ctx context.Context, page int) (*Listing, error)

	// Drafts returns the caller's unpublished posts
	Drafts(ctx context.Context) ([]*Post, error)

	// Stocked returns one page of the caller's bookmarked posts
	Stocked(ctx context.Context, page int) (*Listing, error)
}

// Repository defines the data access interface for posts.
// Update applies the post-field update and the tag-association delta
// in one transaction.
type Repository interface {
	Create(ctx context.Context, post *Post, tagNames []string) (int64, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post, tagNames []string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, kind Kind, offset, limit int) ([]*Post, error)
	Count(ctx context.Context, kind Kind) (int, error)
	ListAll(ctx context.Context, offset, limit int) ([]*Post, error)
	CountAll(ctx context.Context) (int, error)
	ListDrafts(ctx context.Context, ownerID int64) ([]*Post, error)
	ListStocked(ctx context.Context, ownerID int64, offset, limit int) ([]*Post, error)
	CountStocked(ctx context.Context, ownerID int64) (int, error)
}

// Notifier delivers best-effort change notifications after a write
// commits. Implementations never fail the triggering operation.
type Notifier interface {
	// NotifyPost announces a change to the post identified by postID.
	// kindPath is the permalink path segment ("post" or "nippo").
	NotifyPost(actorID int64, title, detail string, postID int64, kindPath string)
}
