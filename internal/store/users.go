package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jimezsa/jobboard/internal/models"
)

// CreateUser inserts a new account and returns its id.
func (s *Store) CreateUser(ctx context.Context, user models.User) (int64, error) {
	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (username, password, email, user_type) VALUES (?, ?, ?, ?)`,
		user.Username, user.Password, user.Email, string(user.Role),
	)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

// RoleForCredentials returns the role of the account matching both username
// and password exactly.
func (s *Store) RoleForCredentials(ctx context.Context, username, password string) (models.Role, error) {
	var role string
	err := s.DB.QueryRowContext(ctx,
		`SELECT user_type FROM users WHERE username = ? AND password = ?`,
		username, password,
	).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return models.Role(role), nil
}

// UserID resolves a username to its id.
func (s *Store) UserID(ctx context.Context, username string) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CountUsers returns how many accounts use username.
func (s *Store) CountUsers(ctx context.Context, username string) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&count)
	return count, err
}
