package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var MigrationFiles embed.FS

// RunMigrations brings dim_game and fact_sales up to the embedded schema.
// It writes schema_migrations, so only call it when this process owns the
// schema; otherwise validate the existing tables instead.
func RunMigrations(db *sql.DB) error {
	src, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return fmt.Errorf("open embedded schema: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("attach schema driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("prepare schema migration: %w", err)
	}

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}

	// The game tables are created with IF NOT EXISTS, so an interrupted
	// step can be marked clean and replayed.
	if dirty {
		slog.Warn("[Migrations] Schema left dirty by an interrupted run, replaying", "version", from)
		if err := m.Force(int(from)); err != nil {
			return fmt.Errorf("clear dirty schema version %d: %w", from, err)
		}
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("[Migrations] Game tables already current", "version", from)
			return nil
		}
		return fmt.Errorf("apply game schema: %w", err)
	}

	to, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	slog.Info("[Migrations] Game tables migrated", "from", from, "to", to)
	return nil
}
