package commands

import (
	"context"

	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
)

// LoginCommandHandler checks credentials and issues a session token.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	sessions   ports.SessionGuard
}

// NewLoginCommandHandler creates a handler for logins.
func NewLoginCommandHandler(uowFactory UserUoWFactory, sessions ports.SessionGuard) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the login command. An unknown username and a wrong
// password both fail with the same AuthenticationError, so the endpoint
// cannot be used to probe for accounts.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (ports.Session, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Session{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		return ports.Session{}, errs.NewAuthenticationError("invalid credentials")
	}
	if err = uow.Commit(ctx); err != nil {
		return ports.Session{}, err
	}

	if err = user.Authenticate(cmd.Password()); err != nil {
		return ports.Session{}, err
	}

	return h.sessions.Issue(ctx, user)
}
