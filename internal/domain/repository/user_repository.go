package repository

import (
	"context"
	"errors"

	"github.com/evenly-app/backend/internal/domain/entity"
)

// Store-level outcomes the services branch on.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	// Create inserts the user and fills ID and CreatedAt. Returns
	// ErrDuplicateEmail when the unique constraint on email trips.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
