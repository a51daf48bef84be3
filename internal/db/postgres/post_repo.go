package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"teamlog/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a post and its tag associations in one transaction.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post, tagNames []string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	query := `
		INSERT INTO posts (kind, user_id, title, body, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		post.Kind, post.OwnerID, post.Title, post.Body, post.Status,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := r.syncTags(ctx, tx, post.ID, tagNames); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit post insert: %w", err)
	}

	return post.ID, nil
}

// Get retrieves a post by id with its resolved tag list.
func (r *postgresPostRepo) Get(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, kind, user_id, title, body, status, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Kind, &post.OwnerID, &post.Title, &post.Body,
		&post.Status, &post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}

	tagsByPost, err := r.loadTags(ctx, []int64{post.ID})
	if err != nil {
		return nil, err
	}
	post.Tags = tagsByPost[post.ID]

	return &post, nil
}

// Update replaces the post's fields and re-syncs its tag associations
// atomically. The tag delta and the field update commit together or
// not at all.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post, tagNames []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	query := `
		UPDATE posts
		SET title = $1, body = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := tx.ExecContext(ctx, query, post.Title, post.Body, post.Status, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post %d: %w", post.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	if err := r.syncTags(ctx, tx, post.ID, tagNames); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post update: %w", err)
	}

	return nil
}

// Delete removes a post. Tag associations, comments and stocks go with
// it via ON DELETE CASCADE.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}
	return nil
}

// List returns one page of published posts of a kind, newest first.
func (r *postgresPostRepo) List(ctx context.Context, kind posts.Kind, offset, limit int) ([]*posts.Post, error) {
	query := `
		SELECT id, kind, user_id, title, body, status, created_at, updated_at
		FROM posts
		WHERE kind = $1 AND status = 'published'
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`
	return r.queryPosts(ctx, query, kind, offset, limit)
}

// Count returns the number of published posts of a kind.
func (r *postgresPostRepo) Count(ctx context.Context, kind posts.Kind) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE kind = $1 AND status = 'published'`, kind,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// ListAll returns one page of published posts across kinds.
func (r *postgresPostRepo) ListAll(ctx context.Context, offset, limit int) ([]*posts.Post, error) {
	query := `
		SELECT id, kind, user_id, title, body, status, created_at, updated_at
		FROM posts
		WHERE status = 'published'
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`
	return r.queryPosts(ctx, query, offset, limit)
}

// CountAll returns the number of published posts across kinds.
func (r *postgresPostRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE status = 'published'`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// ListDrafts returns the owner's unpublished posts, newest first.
func (r *postgresPostRepo) ListDrafts(ctx context.Context, ownerID int64) ([]*posts.Post, error) {
	query := `
		SELECT id, kind, user_id, title, body, status, created_at, updated_at
		FROM posts
		WHERE user_id = $1 AND status = 'draft'
		ORDER BY created_at DESC, id DESC
	`
	return r.queryPosts(ctx, query, ownerID)
}

// ListStocked returns one page of a user's bookmarked posts, most
// recently stocked first.
func (r *postgresPostRepo) ListStocked(ctx context.Context, ownerID int64, offset, limit int) ([]*posts.Post, error) {
	query := `
		SELECT p.id, p.kind, p.user_id, p.title, p.body, p.status, p.created_at, p.updated_at
		FROM posts p
		INNER JOIN stocks s ON s.post_id = p.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC, p.id DESC
		OFFSET $2 LIMIT $3
	`
	return r.queryPosts(ctx, query, ownerID, offset, limit)
}

// CountStocked returns how many posts a user has bookmarked.
func (r *postgresPostRepo) CountStocked(ctx context.Context, ownerID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stocks WHERE user_id = $1`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stocked posts: %w", err)
	}
	return count, nil
}

// queryPosts runs a listing query and hydrates tags for the page.
func (r *postgresPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	var items []*posts.Post
	var ids []int64
	for rows.Next() {
		var post posts.Post
		if err := rows.Scan(
			&post.ID, &post.Kind, &post.OwnerID, &post.Title, &post.Body,
			&post.Status, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		items = append(items, &post)
		ids = append(ids, post.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	tagsByPost, err := r.loadTags(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, post := range items {
		post.Tags = tagsByPost[post.ID]
	}

	return items, nil
}

// loadTags fetches the tag lists for a batch of post ids in one query.
// Tags come back in first-use order (ascending tag id).
func (r *postgresPostRepo) loadTags(ctx context.Context, postIDs []int64) (map[int64][]posts.Tag, error) {
	result := make(map[int64][]posts.Tag)
	if len(postIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT pt.post_id, t.id, t.name
		FROM post_tags pt
		INNER JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY pt.post_id, t.id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	for rows.Next() {
		var postID int64
		var tag posts.Tag
		if err := rows.Scan(&postID, &tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		result[postID] = append(result[postID], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return result, nil
}

// syncTags reconciles a post's tag associations against the desired
// name set with set-difference semantics: associations outside the new
// set are dropped, missing ones added. Tags themselves are upserted
// lazily and never deleted, so orphan tags are expected.
func (r *postgresPostRepo) syncTags(ctx context.Context, tx *sql.Tx, postID int64, tagNames []string) error {
	current := make(map[string]int64)
	rows, err := tx.QueryContext(ctx, `
		SELECT t.id, t.name
		FROM post_tags pt
		INNER JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = $1
	`, postID)
	if err != nil {
		return fmt.Errorf("failed to query current tags: %w", err)
	}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan current tag: %w", err)
		}
		current[name] = id
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating current tags: %w", err)
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("failed to close tag rows: %w", err)
	}

	desired := make(map[string]struct{}, len(tagNames))
	for _, name := range tagNames {
		desired[name] = struct{}{}
	}

	// current \ desired -> drop association
	var removeIDs []int64
	for name, id := range current {
		if _, keep := desired[name]; !keep {
			removeIDs = append(removeIDs, id)
		}
	}
	if len(removeIDs) > 0 {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM post_tags WHERE post_id = $1 AND tag_id = ANY($2)`,
			postID, pq.Array(removeIDs))
		if err != nil {
			return fmt.Errorf("failed to remove tag associations: %w", err)
		}
	}

	// desired \ current -> upsert tag, add association
	for _, name := range tagNames {
		if _, have := current[name]; have {
			continue
		}

		// DO UPDATE instead of DO NOTHING so RETURNING always yields
		// the id, whether the tag is new or already exists.
		var tagID int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO tags (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, name).Scan(&tagID)
		if err != nil {
			return fmt.Errorf("failed to upsert tag %q: %w", name, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)`,
			postID, tagID)
		if err != nil {
			return fmt.Errorf("failed to associate tag %q: %w", name, err)
		}
	}

	return nil
}

// rollback discards a transaction, tolerating the commit-already-done
// case.
func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		log.Printf("WARN: failed to rollback transaction: %v", err)
	}
}
