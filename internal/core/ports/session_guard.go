package ports

import (
	"context"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/staff"
)

// Session is an authenticated login, identified by an opaque bearer token.
type Session struct {
	Token     string
	UserID    kernel.UUID
	Username  string
	Role      staff.Role
	ExpiresAt time.Time
}

// IsAdmin reports whether the session belongs to an administrative account.
func (s Session) IsAdmin() bool {
	return s.Role == staff.RoleAdmin
}

// SessionGuard issues and checks login sessions. Restore invalidates all
// sessions via RevokeAll, since the user table may change underneath them.
type SessionGuard interface {
	// Issue creates a session for an authenticated user and returns it.
	Issue(ctx context.Context, user *staff.User) (Session, error)

	// Authenticate resolves a bearer token to its session. Unknown or
	// expired tokens fail with an AuthenticationError.
	Authenticate(ctx context.Context, token string) (Session, error)

	// Revoke invalidates one session. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error

	// RevokeAll invalidates every session.
	RevokeAll(ctx context.Context) error

	// Sweep drops expired sessions and returns how many were removed.
	Sweep(ctx context.Context) int
}
