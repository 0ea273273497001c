package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shopkart/backend/internal/repository"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountService struct {
	store *repository.Store
}

func NewAccountService(store *repository.Store) *AccountService {
	return &AccountService{store: store}
}

// Register creates a new user with a bcrypt-hashed password. The username
// must be unique; email uniqueness is not enforced.
func (s *AccountService) Register(ctx context.Context, username, email, password string) error {
	taken, err := s.store.UsernameExists(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.CreateUser(ctx, username, email, string(hash)); err != nil {
		// Two concurrent registrations can pass the existence check; the
		// unique constraint catches the loser.
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Login verifies the password against the stored hash. No session or token
// is issued; callers carry the username on subsequent requests.
func (s *AccountService) Login(ctx context.Context, username, password string) error {
	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
