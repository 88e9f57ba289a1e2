// Package application holds the use-case services sitting between the
// HTTP layer and the repositories.
package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/evenly-app/backend/internal/domain/entity"
	"github.com/evenly-app/backend/internal/domain/repository"
	"github.com/evenly-app/backend/pkg/helpers"
)

var (
	// ErrUserExists means the email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers unknown email, missing or malformed
	// stored hash, and wrong password alike, so login failures cannot
	// be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService implements registration and login.
type AuthService struct {
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Logger: logger}
}

// Register creates a user with a hashed password and returns the public
// projection. The existence pre-check is an optimization; the store's
// unique constraint on email is authoritative, so a concurrent
// duplicate still surfaces as ErrUserExists.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*entity.PublicUser, error) {
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Email: email, Name: name, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")
	}
	pub := u.Public()
	return &pub, nil
}

// Login verifies the credentials and returns the public projection.
// The caller issues the session cookie.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.PublicUser, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	pub := u.Public()
	return &pub, nil
}
