package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopkart/backend/internal/model"
)

// ErrDuplicateUser is returned by CreateUser when the username is taken.
var ErrDuplicateUser = errors.New("duplicate user")

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.getExecutor(ctx).QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) error {
	_, err := s.getExecutor(ctx).Exec(ctx,
		"INSERT INTO users (username, email, password) VALUES ($1, $2, $3)",
		username, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := s.getExecutor(ctx).QueryRow(ctx,
		"SELECT username, email, password FROM users WHERE username = $1", username).
		Scan(&u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
