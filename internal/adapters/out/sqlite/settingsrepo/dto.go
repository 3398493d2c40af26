// Package settingsrepo maps the single shop configuration row to its
// relational form.
package settingsrepo

import (
	"restopos/internal/core/domain/model/settings"
)

// settingsRowID is the fixed primary key of the single configuration row.
const settingsRowID = 1

// SettingsDTO represents the persisted shop configuration.
type SettingsDTO struct {
	ID             int    `gorm:"primaryKey"`
	RestaurantName string `gorm:"size:128"`
	Address        string `gorm:"size:256"`
	Phone          string `gorm:"size:32"`
	TaxRateBp      int64
	AllowanceMinor int64
}

// TableName overrides GORM's default naming to use "settings".
func (SettingsDTO) TableName() string {
	return "settings"
}

func fromDomain(s *settings.Settings) SettingsDTO {
	return SettingsDTO{
		ID:             settingsRowID,
		RestaurantName: s.RestaurantName(),
		Address:        s.Address(),
		Phone:          s.Phone(),
		TaxRateBp:      s.TaxRateBp(),
		AllowanceMinor: s.AllowanceMinor(),
	}
}

func toDomain(dto SettingsDTO) (*settings.Settings, error) {
	return settings.RestoreSettings(dto.RestaurantName, dto.Address, dto.Phone, dto.TaxRateBp, dto.AllowanceMinor)
}
