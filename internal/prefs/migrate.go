package prefs

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigrateUp applies every pending schema migration.
func MigrateUp(db *sql.DB) error {
	return runMigrations(db, func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown reverts every applied schema migration.
func MigrateDown(db *sql.DB) error {
	return runMigrations(db, func(m *migrate.Migrate) error { return m.Down() })
}

func runMigrations(db *sql.DB, apply func(*migrate.Migrate) error) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations source: %w", err)
	}
	defer func() {
		_ = src.Close()
	}()

	// The driver is not closed: closing it would close db.
	drv, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("init migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := apply(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
