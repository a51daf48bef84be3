package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"teamlog/internal/core/posts"
	"teamlog/internal/core/stocks"
)

type postgresStockRepo struct {
	db *sql.DB
}

// NewStockRepository creates a new PostgreSQL bookmark repository
func NewStockRepository(db *sql.DB) stocks.Repository {
	return &postgresStockRepo{db: db}
}

// Add inserts the (user, post) bookmark. The unique constraint plus
// ON CONFLICT DO NOTHING makes duplicate calls a silent no-op, also
// under concurrent duplicates.
func (r *postgresStockRepo) Add(ctx context.Context, userID, postID int64) error {
	query := `
		INSERT INTO stocks (user_id, post_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return posts.ErrNotFound
		}
		return fmt.Errorf("failed to insert stock: %w", err)
	}
	return nil
}

// Remove deletes the bookmark if present; removing an absent bookmark
// succeeds.
func (r *postgresStockRepo) Remove(ctx context.Context, userID, postID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM stocks WHERE user_id = $1 AND post_id = $2`,
		userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete stock: %w", err)
	}
	return nil
}

// Exists reports whether the user has bookmarked the post.
func (r *postgresStockRepo) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM stocks WHERE user_id = $1 AND post_id = $2)`,
		userID, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check stock: %w", err)
	}
	return exists, nil
}

// CountByUser returns the user's bookmark count.
func (r *postgresStockRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stocks WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stocks: %w", err)
	}
	return count, nil
}
