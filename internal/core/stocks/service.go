package stocks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"teamlog/internal/core/identity"
)

const opTimeout = 5 * time.Second

// stockService implements the Service interface
type stockService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new bookmark service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &stockService{repo: repo, logger: logger}
}

func (s *stockService) Stock(ctx context.Context, postID int64) error {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.repo.Add(ctx, actorID, postID); err != nil {
		return fmt.Errorf("failed to stock post %d: %w", postID, err)
	}
	return nil
}

func (s *stockService) Unstock(ctx context.Context, postID int64) error {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.repo.Remove(ctx, actorID, postID); err != nil {
		return fmt.Errorf("failed to unstock post %d: %w", postID, err)
	}
	return nil
}

func (s *stockService) IsStocked(ctx context.Context, postID int64) (bool, error) {
	actorID := identity.FromContext(ctx)
	if actorID == identity.Anonymous {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	stocked, err := s.repo.Exists(ctx, actorID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to check stock state for post %d: %w", postID, err)
	}
	return stocked, nil
}

func (s *stockService) Count(ctx context.Context) (int, error) {
	actorID, err := identity.Require(ctx)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := s.repo.CountByUser(ctx, actorID)
	if err != nil {
		return 0, fmt.Errorf("failed to count stocked posts: %w", err)
	}
	return count, nil
}
