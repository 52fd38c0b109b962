package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
)

// UserRepository is the identity store.
type UserRepository interface {
	// Add persists a new user. Returns errs.ErrDuplicateEmail when the email
	// is already registered.
	Add(ctx context.Context, u *user.User) error

	// Get retrieves a user by id. Returns *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// FindByEmail retrieves a user by normalized email.
	// Returns *errs.ObjectNotFoundError when absent.
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
