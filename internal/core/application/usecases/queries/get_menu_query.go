package queries

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the menu, optionally including items currently
// marked unavailable.
type GetMenuQuery struct {
	includeUnavailable bool

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a menu query.
func NewGetMenuQuery(includeUnavailable bool) GetMenuQuery {
	return GetMenuQuery{
		includeUnavailable: includeUnavailable,
		guard:              guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// IncludeUnavailable reports whether unavailable items are wanted.
func (q GetMenuQuery) IncludeUnavailable() bool {
	return q.includeUnavailable
}

// GetMenuQueryResponse is one menu item in the read model.
type GetMenuQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Category   string
	PriceMinor int64
	Available  bool
}
