// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "reader.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n))
	return n == 1
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"novels", "users", "library", "progress", "comments", "reviews"} {
		assert.True(t, tableExists(t, db, table), table)
	}

	v, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, LatestVersion, v)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

// TestMigrate_ReviewsKeepsData checks that adding the reviews table leaves
// rows of the existing tables in place.
func TestMigrate_ReviewsKeepsData(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, MigrateTo(db, 1))

	_, err := db.Exec(`INSERT INTO novels (id, title) VALUES ('n1', 'Novel')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO comments (id, novel_id, user_id, content) VALUES ('c1', 'n1', 'u1', 'hi')`)
	require.NoError(t, err)

	require.NoError(t, MigrateTo(db, 2))

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM novels`).Scan(&n))
	assert.Equal(t, 1, n)
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM comments`).Scan(&n))
	assert.Equal(t, 1, n)
}

// TestMigrate_CompositeKeysClearLibrary checks the key-shape migration: the
// library and progress tables are recreated empty while others keep rows.
func TestMigrate_CompositeKeysClearLibrary(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, MigrateTo(db, 2))

	_, err := db.Exec(`INSERT INTO library (user_id, novel_id, status) VALUES ('u1', 'n1', 'reading')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO novels (id, title) VALUES ('n1', 'Novel')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM library`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM novels`).Scan(&n))
	assert.Equal(t, 1, n)

	_, err = db.Exec(`INSERT INTO library (user_id, novel_id) VALUES ('u1', 'n1')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO library (user_id, novel_id) VALUES ('u1', 'n1')`)
	assert.Error(t, err, "composite key must reject duplicates")
}
