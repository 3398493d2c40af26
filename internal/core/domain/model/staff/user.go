// Package staff implements back-office accounts and the credential check
// that guards destructive operations such as restoring a backup.
package staff

import (
	"errors"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Role separates administrative accounts from floor staff. Only admins may
// trigger backup and restore.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Validate checks the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleStaff:
		return nil
	}
	return errs.NewValueIsInvalidError("role")
}

// User is a back-office account. The password is stored only as a bcrypt
// hash.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an account, hashing the given plaintext password.
func NewUser(id kernel.UUID, username, password string, role Role) (*User, error) {
	u := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.passwordHash = string(hash)

	return u, nil
}

// RestoreUser reconstructs an account from persistence with its stored hash.
func RestoreUser(id kernel.UUID, username, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash, for persistence only.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// IsAdmin reports whether the account may run backup and restore.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// Authenticate compares a plaintext password against the stored hash.
// A mismatch returns an AuthenticationError; the caller cannot tell a wrong
// password from a wrong username.
func (u *User) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return errs.NewAuthenticationError("invalid credentials")
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
