// Package sqlstore provides the database/sql implementation of the storage
// interfaces defined in the internal/store package. One implementation serves
// SQLite (modernc.org/sqlite), PostgreSQL (pgx) and MySQL (go-sql-driver);
// a Dialect captures the few places where their SQL differs.
package sqlstore
