// Package testdb provides database fixtures for tests.
//
// NewSQLite gives every test its own SQLite file under t.TempDir(), with the
// tasks table already created, so store and handler tests run without any
// external service. Tests against PostgreSQL or MySQL use GetTestDBWithT,
// which skips unless TODO_TEST_DB_DRIVER and TODO_TEST_DB_DSN (or
// DATABASE_URL for postgres) are set.
package testdb
