// Package session provides the in-memory session store backing login
// tokens. Sessions do not survive a process restart; operators log in again.
package session

import (
	"context"
	"sync"
	"time"

	"restopos/internal/core/domain/model/staff"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"

	"github.com/google/uuid"
)

// DefaultTTL is used when NewGuard is given a non-positive lifetime.
const DefaultTTL = 8 * time.Hour

// Guard keeps active sessions keyed by bearer token.
type Guard struct {
	mu       sync.RWMutex
	sessions map[string]ports.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewGuard creates a session guard whose sessions expire after ttl.
func NewGuard(ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Guard{
		sessions: make(map[string]ports.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue creates a session for an authenticated user. The token is an opaque
// random identifier; it carries no user data itself.
func (g *Guard) Issue(_ context.Context, user *staff.User) (ports.Session, error) {
	session := ports.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID(),
		Username:  user.Username(),
		Role:      user.Role(),
		ExpiresAt: g.now().Add(g.ttl),
	}

	g.mu.Lock()
	g.sessions[session.Token] = session
	g.mu.Unlock()

	return session, nil
}

// Authenticate resolves a bearer token to its session.
func (g *Guard) Authenticate(_ context.Context, token string) (ports.Session, error) {
	g.mu.RLock()
	session, ok := g.sessions[token]
	g.mu.RUnlock()

	if !ok {
		return ports.Session{}, errs.NewAuthenticationError("unknown session")
	}
	if g.now().After(session.ExpiresAt) {
		g.mu.Lock()
		delete(g.sessions, token)
		g.mu.Unlock()
		return ports.Session{}, errs.NewAuthenticationError("session expired")
	}

	return session, nil
}

// Revoke invalidates one session. Unknown tokens are ignored.
func (g *Guard) Revoke(_ context.Context, token string) error {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
	return nil
}

// RevokeAll invalidates every session. Called after a restore, when the
// accounts the sessions were issued for may no longer exist.
func (g *Guard) RevokeAll(_ context.Context) error {
	g.mu.Lock()
	g.sessions = make(map[string]ports.Session)
	g.mu.Unlock()
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (g *Guard) Sweep(_ context.Context) int {
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for token, session := range g.sessions {
		if now.After(session.ExpiresAt) {
			delete(g.sessions, token)
			removed++
		}
	}
	return removed
}
