package comments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"teamlog/internal/core/identity"
	"teamlog/internal/core/posts"
)

const (
	notifyTitleNewComment = "New comment"

	opTimeout = 5 * time.Second
)

// commentService implements the Service interface
type commentService struct {
	repo     Repository
	postRepo PostGetter
	notifier posts.Notifier
	logger   *slog.Logger
}

// NewService creates a new comment service
func NewService(repo Repository, postRepo PostGetter, notifier posts.Notifier, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:     repo,
		postRepo: postRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *commentService) Add(ctx context.Context, postID int64, body string) (int64, error) {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return 0, err
	}
	if body == "" {
		return 0, ErrEmptyBody
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Verify the target exists up front so a dangling post id surfaces
	// as not-found instead of a constraint violation.
	post, err := s.postRepo.Get(ctx, postID)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, &Comment{
		PostID:   postID,
		AuthorID: actorID,
		Body:     body,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add comment to post %d: %w", postID, err)
	}

	// Comments always notify, draft or published.
	s.notifier.NotifyPost(actorID, notifyTitleNewComment, body, postID, string(post.Kind))

	return id, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	if _, err := identity.Require(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	items, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %d: %w", postID, err)
	}
	return items, nil
}
