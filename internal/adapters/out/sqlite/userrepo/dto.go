// Package userrepo maps back-office accounts to their relational form.
package userrepo

import (
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/staff"
)

// UserDTO represents one persisted account. Only the bcrypt hash of the
// password is stored.
type UserDTO struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"size:64;uniqueIndex"`
	PasswordHash string `gorm:"size:128"`
	Role         string `gorm:"size:16"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *staff.User) UserDTO {
	return UserDTO{
		ID:           u.ID().String(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*staff.User, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	role := staff.Role(dto.Role)
	if err := role.Validate(); err != nil {
		return nil, err
	}
	return staff.RestoreUser(id, dto.Username, dto.PasswordHash, role, dto.CreatedAt)
}
