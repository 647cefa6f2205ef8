package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_UnsupportedDriver(t *testing.T) {
	err := Migrate(nil, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestMigrate_SQLiteCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tracker.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))

	for _, table := range []string{"users", "categories", "expenses", "salaries"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_SQLiteIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tracker.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))
	require.NoError(t, Migrate(db, "sqlite3"))
}
