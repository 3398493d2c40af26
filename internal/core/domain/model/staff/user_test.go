package staff_test

import (
	"testing"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/staff"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		u, err := staff.NewUser(kernel.NewUUID(), "admin", "s3cret", staff.RoleAdmin)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.NotEqual(t, "s3cret", u.PasswordHash())
		assert.True(t, u.IsAdmin())

		assert.NoError(t, u.Authenticate("s3cret"))
		assert.ErrorIs(t, u.Authenticate("wrong"), errs.ErrAuthentication)
	})

	t.Run("rejects blank credentials", func(t *testing.T) {
		_, err := staff.NewUser(kernel.NewUUID(), "", "s3cret", staff.RoleStaff)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = staff.NewUser(kernel.NewUUID(), "admin", "", staff.RoleStaff)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := staff.NewUser(kernel.NewUUID(), "admin", "s3cret", staff.Role("owner"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreUser(t *testing.T) {
	original, err := staff.NewUser(kernel.NewUUID(), "admin", "s3cret", staff.RoleAdmin)
	require.NoError(t, err)

	restored, err := staff.RestoreUser(
		original.ID(), original.Username(), original.PasswordHash(), original.Role(),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.NoError(t, restored.Authenticate("s3cret"))
	assert.ErrorIs(t, restored.Authenticate("wrong"), errs.ErrAuthentication)
}
