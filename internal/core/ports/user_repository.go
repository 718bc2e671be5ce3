package ports

import (
	"context"

	"github.com/hrive/portal-backend/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
// Exactly one implementation is selected at startup (direct Postgres or the
// managed backend); callers never branch on which one they hold.
type UserRepository interface {
	// FindByEmail returns the user with the given email, or
	// domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new user and returns the stored row. A duplicate
	// email surfaces as domain.ErrUserExists, not a generic error.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// EnsureSchema makes the backing user table exist. Idempotent; a no-op
	// for backends whose schema is managed externally.
	EnsureSchema(ctx context.Context) error
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}
