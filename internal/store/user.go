package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tragkas/portfolio/internal/domain"
)

// GetUserByUsername looks up a user by its unique username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = ?", username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetUserByID looks up a user by id
func (s *Store) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpdateCredentials replaces a user's username and password hash
func (s *Store) UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET username = ?, password_hash = ? WHERE id = ?",
		username, passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("update credentials: %w", err)
	}
	return checkAffected(res, "user")
}

// EnsureAdminUser creates the admin account when no users exist yet
func (s *Store) EnsureAdminUser(ctx context.Context, username, passwordHash string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM users").Scan(&count); err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)", username, passwordHash,
	)
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	return true, nil
}

// ResetPassword sets a new password hash for the named user. When that user
// does not exist it falls back to the first user in the table, and when the
// table is empty it creates the named user. Returns the affected username.
func (s *Store) ResetPassword(ctx context.Context, username, passwordHash string) (string, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE username = ?", passwordHash, username,
	)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return "", fmt.Errorf("rows affected: %w", err)
	} else if n > 0 {
		return username, nil
	}

	var u domain.User
	err = s.db.QueryRowContext(ctx,
		"SELECT id, username FROM users ORDER BY id LIMIT 1",
	).Scan(&u.ID, &u.Username)
	if err == sql.ErrNoRows {
		_, err = s.db.ExecContext(ctx,
			"INSERT INTO users (username, password_hash) VALUES (?, ?)", username, passwordHash,
		)
		if err != nil {
			return "", fmt.Errorf("insert user: %w", err)
		}
		return username, nil
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE id = ?", passwordHash, u.ID,
	)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return u.Username, nil
}
