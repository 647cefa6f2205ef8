package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/expense-tracker/internal/config"
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver-specific error
// classifier. It is constructed once in main and injected into every
// repository; there is no package-level connection state.
type DB struct {
	*sql.DB
	driver          string
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// Connect opens a database connection for the given configuration.
//
// The driver is selected from the DSN: a "postgres://" or "postgresql://"
// URL opens PostgreSQL via the pgx stdlib driver; any other value is treated
// as a SQLite file path (created if absent). The connection is verified with
// a ping before it is returned.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := DriverForDSN(cfg.DSN)

	if driver == "sqlite3" {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "Connect").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "Connect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "Connect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "Connect").Str("driver", driver).Msg("connected to database successfully")

	db := &DB{
		DB:              conn,
		driver:          driver,
		logger:          log,
		errorClassifier: classifierForDriver(driver),
	}

	return db, nil
}

// Migrate applies all pending schema migrations for the active driver.
// Idempotent, safe to run on every start.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// DriverForDSN maps a connection string onto a database/sql driver name.
func DriverForDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}

	return "sqlite3"
}

func classifierForDriver(driver string) ErrorClassifier {
	if driver == "pgx" {
		return NewPostgresErrorClassifier()
	}

	return NewSQLiteErrorClassifier()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
