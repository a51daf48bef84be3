package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"teamlog/internal/core/comments"
	"teamlog/internal/core/posts"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create appends a comment to a post.
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (int64, error) {
	query := `
		INSERT INTO comments (post_id, user_id, body, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.AuthorID, comment.Body,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		// The service checks post existence first; this covers the
		// race where the post vanishes in between.
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return 0, posts.ErrNotFound
		}
		return 0, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment.ID, nil
}

// ListByPost returns a post's comments oldest first, with author names
// joined in for display.
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, c.body, c.created_at, u.name
		FROM comments c
		INNER JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	var items []*comments.Comment
	for rows.Next() {
		var c comments.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		items = append(items, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return items, nil
}
