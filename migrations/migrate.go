// Package migrations holds the versioned schema of the local reader database.
//
// Migrations are plain goose SQL files embedded into the binary. Version 3
// changes the key of the library and progress tables to (user_id, novel_id)
// and clears both tables; every other step keeps existing rows.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// LatestVersion is the schema version produced by Migrate.
const LatestVersion int64 = 3

func Migrate(db *sql.DB) error {
	return MigrateTo(db, LatestVersion)
}

// MigrateTo applies migrations up to and including version.
func MigrateTo(db *sql.DB, version int64) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpTo(db, ".", version); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the current schema version of db.
func Version(db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}
	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return goose.GetDBVersion(db)
}
