package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassifier normalises driver-specific SQL errors so that repository
// code can map them onto sentinel errors without knowing which driver is
// active.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a violated
	// UNIQUE constraint.
	IsUniqueViolation(err error) bool
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a classifier for the pgx driver.
func NewPostgresErrorClassifier() ErrorClassifier {
	return PostgresErrorClassifier{}
}

func (PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a classifier for the sqlite3 driver.
func NewSQLiteErrorClassifier() ErrorClassifier {
	return SQLiteErrorClassifier{}
}

func (SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
