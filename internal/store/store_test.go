package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"pharmacy/m/internal/config"
	"pharmacy/m/internal/database"
	"pharmacy/m/internal/migrations"
)

// newTestDB returns a migrated in-memory SQLite database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Connect(config.DriverSQLite, ":memory:", 1)
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))
	t.Cleanup(func() { db.Close() })
	return db
}

// newPostgresMock returns a sqlx handle that rebinds like pgx but talks to sqlmock.
func newPostgresMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, "pgx"), mock
}

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
