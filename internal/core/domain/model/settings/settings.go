// Package settings implements the shop-wide configuration row: restaurant
// identity printed on receipts, the tax rate applied to new orders, and the
// cash over-tender allowance.
package settings

import (
	"errors"

	"restopos/internal/pkg/errs"
)

// ErrSettingsIsNotConstructed is returned when a Settings instance was not
// created through NewSettings or RestoreSettings.
var ErrSettingsIsNotConstructed = errors.New("Settings must be created via NewSettings or RestoreSettings")

// maxTaxRateBp caps the tax rate at 100%.
const maxTaxRateBp = 10_000

// Settings is the single shop configuration record. New orders capture the
// tax rate at creation, so edits here never change totals of existing
// orders.
type Settings struct {
	restaurantName string
	address        string
	phone          string
	taxRateBp      int64
	allowanceMinor int64

	isConstructed bool
}

// NewSettings creates a settings record.
func NewSettings(restaurantName, address, phone string, taxRateBp, allowanceMinor int64) (*Settings, error) {
	s := &Settings{isConstructed: true}

	if err := errors.Join(
		s.setRestaurantName(restaurantName),
		s.setAddress(address),
		s.setPhone(phone),
		s.setTaxRateBp(taxRateBp),
		s.setAllowanceMinor(allowanceMinor),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSettings reconstructs settings from persistence.
func RestoreSettings(restaurantName, address, phone string, taxRateBp, allowanceMinor int64) (*Settings, error) {
	return NewSettings(restaurantName, address, phone, taxRateBp, allowanceMinor)
}

// Validate ensures the Settings was created through a constructor.
func (s *Settings) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettingsIsNotConstructed
	}
	return nil
}

func (s *Settings) RestaurantName() string {
	return s.restaurantName
}

func (s *Settings) Address() string {
	return s.address
}

func (s *Settings) Phone() string {
	return s.phone
}

// TaxRateBp returns the tax rate in basis points applied to new orders.
func (s *Settings) TaxRateBp() int64 {
	return s.taxRateBp
}

// AllowanceMinor returns how far a cash tender may exceed the remaining due,
// in minor units.
func (s *Settings) AllowanceMinor() int64 {
	return s.allowanceMinor
}

func (s *Settings) setRestaurantName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	s.restaurantName = name
	return nil
}

func (s *Settings) setAddress(address string) error {
	s.address = address
	return nil
}

func (s *Settings) setPhone(phone string) error {
	s.phone = phone
	return nil
}

func (s *Settings) setTaxRateBp(rateBp int64) error {
	if rateBp < 0 || rateBp > maxTaxRateBp {
		return errs.NewValueIsInvalidError("tax rate")
	}
	s.taxRateBp = rateBp
	return nil
}

func (s *Settings) setAllowanceMinor(allowance int64) error {
	if allowance < 0 {
		return errs.NewValueIsInvalidError("over-tender allowance")
	}
	s.allowanceMinor = allowance
	return nil
}
