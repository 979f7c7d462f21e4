package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by *sql.DB, *sql.Conn and *sql.Tx, allowing store code
// to run the same statements against a pool, a single connection or a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ConnProvider hands out dedicated connections. *sql.DB implements it.
// Callers must Close the returned connection to give it back to the pool.
type ConnProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

var (
	_ DBTX         = (*sql.DB)(nil)
	_ DBTX         = (*sql.Conn)(nil)
	_ ConnProvider = (*sql.DB)(nil)
)
