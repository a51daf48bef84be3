package posts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"teamlog/internal/core/identity"
	"teamlog/internal/core/revisions"
)

const (
	notifyTitleNewPost  = "New post"
	notifyTitleEditPost = "Edit post"

	// opTimeout bounds every repository round trip issued by this
	// service so no request can hang on the store indefinitely.
	opTimeout = 5 * time.Second
)

// postService implements the Service interface
type postService struct {
	repo         Repository
	notifier     Notifier
	logger       *slog.Logger
	pageSize     int
	feedPageSize int
}

// NewService creates a new post service.
// pageSize drives kind-scoped listings, feedPageSize the cross-kind
// feed.
func NewService(repo Repository, notifier Notifier, logger *slog.Logger, pageSize, feedPageSize int) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if feedPageSize <= 0 {
		feedPageSize = pageSize
	}
	return &postService{
		repo:         repo,
		notifier:     notifier,
		logger:       logger,
		pageSize:     pageSize,
		feedPageSize: feedPageSize,
	}
}

func (s *postService) Create(ctx context.Context, req CreateRequest) (int64, error) {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return 0, err
	}

	if !req.Kind.Valid() {
		return 0, ErrInvalidKind
	}
	if req.Title == "" {
		return 0, NewValidationError("title", "title is required")
	}
	if req.Body == "" {
		return 0, NewValidationError("body", "body is required")
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	post := &Post{
		Kind:    req.Kind,
		OwnerID: actorID,
		Title:   req.Title,
		Body:    req.Body,
		Status:  statusFor(req.Action, StatusDraft),
	}

	id, err := s.repo.Create(ctx, post, ParseTagString(req.Tags))
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", req.Kind, err)
	}

	if req.Action == ActionPublish {
		s.notifier.NotifyPost(actorID, notifyTitleNewPost, req.Body, id, string(req.Kind))
	}

	return id, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*Post, error) {
	if _, err := identity.Require(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.repo.Get(ctx, id)
}

func (s *postService) Update(ctx context.Context, req UpdateRequest) error {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return err
	}

	if req.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if req.Body == "" {
		return NewValidationError("body", "body is required")
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	old, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		return err
	}
	if !old.EditableBy(actorID) {
		return identity.ErrForbidden
	}

	post := &Post{
		ID:      req.ID,
		Kind:    old.Kind,
		OwnerID: old.OwnerID,
		Title:   req.Title,
		Body:    req.Body,
		Status:  statusFor(req.Action, old.Status),
	}

	if err := s.repo.Update(ctx, post, ParseTagString(req.Tags)); err != nil {
		return fmt.Errorf("failed to update post %d: %w", req.ID, err)
	}

	if req.Action == ActionPublish {
		detail := revisions.Diff(old.Body, req.Body)
		s.notifier.NotifyPost(actorID, notifyTitleEditPost, detail, req.ID, string(old.Kind))
	}

	return nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	post, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !post.EditableBy(actorID) {
		return identity.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	return nil
}

func (s *postService) List(ctx context.Context, kind Kind, page int) (*Listing, error) {
	if _, err := identity.Require(ctx); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	items, err := s.repo.List(ctx, kind, PageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	count, err := s.repo.Count(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", kind, err)
	}

	return newListing(items, count, page, s.pageSize), nil
}

func (s *postService) Feed(ctx context.Context, page int) (*Listing, error) {
	if _, err := identity.Require(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	items, err := s.repo.ListAll(ctx, PageOffset(page, s.feedPageSize), s.feedPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}
	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count feed: %w", err)
	}

	return newListing(items, count, page, s.feedPageSize), nil
}

func (s *postService) Drafts(ctx context.Context) ([]*Post, error) {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	items, err := s.repo.ListDrafts(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return items, nil
}

func (s *postService) Stocked(ctx context.Context, page int) (*Listing, error) {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	items, err := s.repo.ListStocked(ctx, actorID, PageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocked posts: %w", err)
	}
	count, err := s.repo.CountStocked(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count stocked posts: %w", err)
	}

	return newListing(items, count, page, s.pageSize), nil
}

// statusFor maps a write action onto the post status. A publish always
// lands on published; a plain save keeps whatever status the post had,
// so a published post never drops back to draft on re-save.
func statusFor(action Action, current Status) Status {
	if action == ActionPublish {
		return StatusPublished
	}
	if current == "" {
		return StatusDraft
	}
	return current
}
