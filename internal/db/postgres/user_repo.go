package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"teamlog/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Get retrieves a user by id.
func (r *postgresUserRepo) Get(ctx context.Context, id int64) (*users.User, error) {
	var user users.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slack_handle FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.Name, &user.SlackHandle)
	if err == sql.ErrNoRows {
		return nil, users.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}
