// Package migrations applies the SQL schema under this directory with
// golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

func newMigrator(db *sql.DB, path string) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// Up applies all pending migrations from path.
func Up(ctx context.Context, db *sql.DB, path string) error {
	m, err := newMigrator(db, path)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Ctx(ctx).Info().Msg("no migrations to apply")
	} else {
		log.Ctx(ctx).Info().Msg("migrations applied")
	}
	return nil
}

// Down rolls everything back. Used by tooling, never at startup.
func Down(ctx context.Context, db *sql.DB, path string) error {
	m, err := newMigrator(db, path)
	if err != nil {
		return err
	}

	err = m.Down()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to rollback migrations: %w", err)
	}
	log.Ctx(ctx).Info().Msg("migrations rolled back")
	return nil
}
