package ports

import (
	"context"

	"restopos/internal/core/domain/model/settings"
)

// SettingsRepository defines access to the single shop configuration row.
type SettingsRepository interface {
	// Get retrieves the current settings.
	Get(ctx context.Context) (*settings.Settings, error)

	// Update replaces the stored settings. Orders created before the update
	// keep the tax rate they captured.
	Update(ctx context.Context, s *settings.Settings) error
}
