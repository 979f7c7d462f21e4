package testdb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// NewSQLite opens a fresh SQLite database in a temporary directory and
// creates the schema. The pool is closed when the test finishes.
func NewSQLite(t *testing.T) (*sql.DB, sqlstore.Dialect) {
	t.Helper()

	return open(t, config.DatabaseConfig{
		Driver:       sqlstore.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "todo.db"),
		MaxOpenConns: 4,
	})
}

// GetTestDatabaseConfig returns the external database configured for
// integration tests and whether one is configured at all.
func GetTestDatabaseConfig() (config.DatabaseConfig, bool) {
	driver := os.Getenv("TODO_TEST_DB_DRIVER")
	dsn := os.Getenv("TODO_TEST_DB_DSN")

	if dsn == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			driver, dsn = sqlstore.DriverPostgres, url
		}
	}
	if driver == "" || dsn == "" {
		return config.DatabaseConfig{}, false
	}

	return config.DatabaseConfig{Driver: driver, DSN: dsn, MaxOpenConns: 4}, true
}

// ShouldSkipDatabaseTest reports whether no external test database is configured.
func ShouldSkipDatabaseTest() bool {
	_, ok := GetTestDatabaseConfig()
	return !ok
}

// GetTestDBWithT connects to the configured external database, creates the
// schema and empties the tasks table before and after the test.
// The test is skipped when no database is configured.
func GetTestDBWithT(t *testing.T) (*sql.DB, sqlstore.Dialect) {
	t.Helper()

	cfg, ok := GetTestDatabaseConfig()
	if !ok {
		t.Skip("TODO_TEST_DB_DSN / DATABASE_URL not set - skipping integration test")
	}

	db, dialect := open(t, cfg)
	ResetTasks(t, db)
	t.Cleanup(func() { ResetTasks(t, db) })

	return db, dialect
}

// ResetTasks deletes every row of the tasks table.
func ResetTasks(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err := db.ExecContext(ctx, "DELETE FROM tasks")
	require.NoError(t, err, "Failed to reset tasks table")
}

func open(t *testing.T, cfg config.DatabaseConfig) (*sql.DB, sqlstore.Dialect) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, dialect, err := sqlstore.Open(ctx, cfg)
	require.NoError(t, err, "Failed to open test database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, sqlstore.EnsureSchema(ctx, db, dialect), "Failed to create schema")

	return db, dialect
}
