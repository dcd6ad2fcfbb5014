package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/domain/directory"
	"ems/internal/platform/config"
)

// Seed creates the bootstrap HR account when SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD are set. Re-running against an existing account is a
// no-op.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	svc := directory.NewService(directory.NewStore(pool))
	if _, err := svc.GetByOfficialEmail(ctx, cfg.SeedAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, directory.ErrNotFound) {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	admin := directory.Employee{
		FirstName:     "HR",
		LastName:      "Admin",
		EmailID:       cfg.SeedAdminEmail,
		OfficialEmail: cfg.SeedAdminEmail,
		Role:          "HR",
		Status:        directory.StatusActive,
	}
	created, err := svc.Create(ctx, admin, cfg.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin create: %w", err)
	}
	slog.Info("seeded admin account", "id", created.ID, "email", created.OfficialEmail)
	return nil
}
