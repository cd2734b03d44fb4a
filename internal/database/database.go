package database

import (
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"pharmacy/m/internal/config"
)

// DriverName maps a configured driver onto the registered database/sql driver.
func DriverName(driver string) string {
	if driver == config.DriverPostgres {
		return "pgx"
	}
	return "sqlite"
}

// Connect opens the configured database and sizes its connection pool.
// SQLite is held to a single connection so in-memory databases survive across queries.
func Connect(driver, dsn string, maxOpen int) (*sqlx.DB, error) {
	if DriverName(driver) == "sqlite" {
		dsn = sqliteDSN(dsn)
	}
	db, err := sqlx.Connect(DriverName(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver != config.DriverPostgres || maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	return db, nil
}

// sqliteDSN makes modernc write times as "2006-01-02 15:04:05.999999999-07:00",
// which it parses back into time.Time. Its default format does not round-trip
// non-UTC offsets.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_time_format=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_time_format=sqlite"
}

// IsPostgres reports whether db talks to PostgreSQL.
func IsPostgres(db *sqlx.DB) bool {
	return db.DriverName() == "pgx"
}
