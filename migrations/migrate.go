// Package migrations applies the embedded SQL schema migrations with goose.
//
// Two migration sets are shipped, one per supported dialect, because the
// auto-increment and timestamp syntax differ between PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations for the given driver name
// ("pgx" or "sqlite3"). Safe to run on every start.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	var dir string
	switch driver {
	case "pgx":
		dir = "postgres"
	case "sqlite3":
		dir = "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
