// Package store holds one repository per entity. Each method is a single
// statement against the shared *sqlx.DB; queries are written with '?' and
// rebound for the active driver.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/internal/database"
)

var (
	// ErrNotFound is returned when no row matches the requested key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique column already holds the value.
	ErrDuplicate = errors.New("already exists")
)

func notFound(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return fmt.Errorf("get %s: %w", entity, err)
}

// isUniqueViolation matches both SQLite ("UNIQUE constraint failed") and
// PostgreSQL ("duplicate key value violates unique constraint") messages.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// syncIdentity moves a PostgreSQL identity sequence past keys that were
// inserted explicitly, so the next generated key does not collide. SQLite
// picks max+1 on its own.
func syncIdentity(ctx context.Context, db *sqlx.DB, table, column string) error {
	if !database.IsPostgres(db) {
		return nil
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', '%s'), GREATEST((SELECT MAX(%s) FROM %s), 1))`,
		table, column, column, table))
	if err != nil {
		return fmt.Errorf("sync %s identity: %w", table, err)
	}
	return nil
}
