package cmd

import (
	"context"
	"errors"
	"fmt"

	"restopos/internal/adapters/out/sqlite/catalogrepo"
	"restopos/internal/adapters/out/sqlite/settingsrepo"
	"restopos/internal/adapters/out/sqlite/userrepo"
	"restopos/internal/core/domain/model/catalog"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/settings"
	"restopos/internal/core/domain/model/staff"
	"restopos/internal/pkg/errs"
)

// defaultTaxRateBp is the tax rate new shops start with, 10%.
const defaultTaxRateBp = 1000

// defaultAllowanceMinor is how far a cash tender may exceed the amount due
// on a fresh install, $100.00.
const defaultAllowanceMinor = 10_000

// Seed writes the admin account, shop settings, and a starter catalog on
// first boot. Every part is independently idempotent: a store that already
// has the data keeps it untouched.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	if err := c.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	if err := c.seedSettings(ctx); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err := c.seedCatalog(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func (c *CompositionRoot) seedAdmin(ctx context.Context) error {
	if c.config.AdminUsername == "" || c.config.AdminPassword == "" {
		return nil
	}

	repo := userrepo.NewGormUserRepository(c.db.Gorm())

	_, err := repo.GetByUsername(ctx, c.config.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	admin, err := staff.NewUser(kernel.NewUUID(), c.config.AdminUsername, c.config.AdminPassword, staff.RoleAdmin)
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Seeding admin account", "username", c.config.AdminUsername)
	return repo.Add(ctx, admin)
}

func (c *CompositionRoot) seedSettings(ctx context.Context) error {
	repo := settingsrepo.NewGormSettingsRepository(c.db.Gorm())

	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	defaults, err := settings.NewSettings("Restaurant", "", "", defaultTaxRateBp, defaultAllowanceMinor)
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Seeding default settings")
	return repo.Update(ctx, defaults)
}

func (c *CompositionRoot) seedCatalog(ctx context.Context) error {
	repo := catalogrepo.NewGormCatalogRepository(c.db.Gorm())

	tables, err := repo.GetAllTables(ctx)
	if err != nil {
		return err
	}
	if len(tables) > 0 {
		return nil
	}

	c.logger.InfoContext(ctx, "Seeding starter catalog")

	for number := 1; number <= 8; number++ {
		table, tableErr := catalog.NewTable(kernel.NewUUID(), number, 4)
		if tableErr != nil {
			return tableErr
		}
		if err = repo.AddTable(ctx, table); err != nil {
			return err
		}
	}

	waiter, err := catalog.NewWaiter(kernel.NewUUID(), "House")
	if err != nil {
		return err
	}
	return repo.AddWaiter(ctx, waiter)
}
