package ports

import (
	"context"

	"restopos/internal/core/domain/model/staff"
)

// UserRepository defines the persistence contract for back-office accounts.
type UserRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, user *staff.User) error

	// GetByUsername retrieves an account by its login name.
	// Returns an ObjectNotFoundError when no such account exists.
	GetByUsername(ctx context.Context, username string) (*staff.User, error)
}
