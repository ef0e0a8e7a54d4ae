package repository

import (
	"context"
	"errors"

	"github.com/adrianhuber/accounts-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrConflict is returned when a create collides with the unique
	// email constraint. The store enforces uniqueness; the application
	// layer translates this into its duplicate-registration error.
	ErrConflict = errors.New("email already taken")
)

// UserRepository defines the persistence port for user records.
// FindByEmail expects a normalized (lowercase) address and does an
// exact match on the stored value.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
