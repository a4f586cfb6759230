package repository

import (
	"context"
	"errors"
	"time"

	"orgconnect/backend/internal/user/domain"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
// Uniqueness is enforced by the store's unique constraint, so concurrent
// creates cannot both succeed.
var ErrDuplicateEmail = errors.New("email already registered")

// Repository defines persistence for user accounts.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	// UpdateLastLogin sets last_login and returns the updated user, or nil if no row matches.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) (*domain.User, error)
}
