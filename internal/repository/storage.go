package repo

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"sitelog/internal/lib"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var gooseMu sync.Mutex

func init() {
	// queries are written with "?" placeholders and rebound per driver
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the configured database. For SQLite a single writer
// connection avoids "database is locked" errors under concurrent requests.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	const op = "storage.Open"

	if _, err := gooseDialect(driver); err != nil {
		return nil, lib.Err(op, err)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// ApplyMigrations runs the embedded goose migrations against db.
func ApplyMigrations(ctx context.Context, db *sqlx.DB) error {
	const op = "storage.ApplyMigrations"

	dialect, err := gooseDialect(db.DriverName())
	if err != nil {
		return lib.Err(op, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return lib.Err(op, err)
	}
	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}
