package commands_test

import (
	"context"
	"testing"
	"time"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/staff"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginUoW(t *testing.T, userRepo *MockUserRepository) (*MockUoW, *MockUserUoWFactory) {
	t.Helper()

	uow := new(MockUoW)
	uow.On("Begin", context.Background()).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", context.Background()).Return(nil).Maybe()
	uow.On("Rollback", context.Background()).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewLoginCommand("admin", "s3cret")
	require.NoError(t, err)

	user, err := staff.NewUser(kernel.NewUUID(), "admin", "s3cret", staff.RoleAdmin)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByUsername", ctx, "admin").Return(user, nil).Once()

	issued := ports.Session{
		Token:     "token",
		UserID:    user.ID(),
		Username:  "admin",
		Role:      staff.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	sessions := new(MockSessionGuard)
	sessions.On("Issue", ctx, user).Return(issued, nil).Once()

	_, factory := loginUoW(t, userRepo)
	h := commands.NewLoginCommandHandler(factory, sessions)
	session, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "token", session.Token)
	assert.True(t, session.IsAdmin())
	sessions.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewLoginCommand("admin", "wrong")
	require.NoError(t, err)

	user, err := staff.NewUser(kernel.NewUUID(), "admin", "s3cret", staff.RoleAdmin)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByUsername", ctx, "admin").Return(user, nil).Once()

	sessions := new(MockSessionGuard)

	_, factory := loginUoW(t, userRepo)
	h := commands.NewLoginCommandHandler(factory, sessions)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthentication)
	sessions.AssertNotCalled(t, "Issue")
}

func TestLoginCommandHandler_Handle_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewLoginCommand("ghost", "s3cret")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByUsername", ctx, "ghost").
		Return(nil, errs.NewObjectNotFoundError("user", "ghost")).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory, new(MockSessionGuard))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthentication)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}
