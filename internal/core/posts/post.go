package posts

import (
	"strings"
	"time"
)

// Kind distinguishes long-form posts from daily-log entries.
// Both share the posts table and differ only in listing surfaces.
type Kind string

const (
	KindPost  Kind = "post"
	KindNippo Kind = "nippo"
)

// Valid reports whether k is a known post kind.
func (k Kind) Valid() bool {
	return k == KindPost || k == KindNippo
}

// Status is the publication state of a post.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Action marks a write as a silent draft save or a publishing write.
// Only publishing writes produce outbound notifications.
type Action string

const (
	ActionSave    Action = "save"
	ActionPublish Action = "publish"
)

// Tag is a case-normalized label shared across posts.
// Tags are created lazily on first use and never deleted.
type Tag struct {
	Name string `json:"name" db:"name"`
	ID   int64  `json:"id" db:"id"`
}

// Post is a long-form post or nippo entry authored by a team member.
// OwnerID is immutable after creation; only the owner may mutate or
// delete the post.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Kind      Kind      `json:"kind" db:"kind"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Status    Status    `json:"status" db:"status"`
	Tags      []Tag     `json:"tags"`
	ID        int64     `json:"id" db:"id"`
	OwnerID   int64     `json:"ownerId" db:"user_id"`
}

// EditableBy reports whether userID may mutate or delete the post.
func (p *Post) EditableBy(userID int64) bool {
	return p.OwnerID == userID
}

// TagString joins the post's tags back into the comma-separated form
// the edit view round-trips.
func (p *Post) TagString() string {
	names := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		names[i] = t.Name
	}
	return strings.Join(names, ",")
}

// CreateRequest is the input for creating a post or nippo entry.
type CreateRequest struct {
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Tags   string `json:"tags"`
	Action Action `json:"action"`
}

// UpdateRequest is the input for updating an existing post.
// The tag string fully replaces the current tag set.
type UpdateRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Tags   string `json:"tags"`
	Action Action `json:"action"`
	ID     int64  `json:"id"`
}

// Listing is one page of posts plus the pagination frame the list
// views render.
type Listing struct {
	Posts       []*Post `json:"posts"`
	TotalCount  int     `json:"totalCount"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	NextPage    int     `json:"nextPage"`
	PrevPage    int     `json:"prevPage"`
}
