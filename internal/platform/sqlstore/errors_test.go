package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-api/internal/platform/sqlstore"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/phrazzld/todo-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	plain := errors.New("connection reset by peer")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "postgres not null", err: &pgconn.PgError{Code: "23502"}, wantIs: store.ErrInvalidEntity},
		{name: "postgres check", err: &pgconn.PgError{Code: "23514"}, wantIs: store.ErrInvalidEntity},
		{name: "postgres unrelated", err: &pgconn.PgError{Code: "08006"}, wantIs: nil},
		{name: "mysql bad null", err: &mysql.MySQLError{Number: 1048}, wantIs: store.ErrInvalidEntity},
		{name: "mysql check", err: &mysql.MySQLError{Number: 3819}, wantIs: store.ErrInvalidEntity},
		{name: "wrapped mysql bad null", err: fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1048}), wantIs: store.ErrInvalidEntity},
		{name: "unmapped", err: plain, wantIs: plain},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sqlstore.MapError(tc.err)
			if tc.wantNil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			if tc.wantIs != nil {
				assert.ErrorIs(t, got, tc.wantIs)
			} else {
				assert.NotErrorIs(t, got, store.ErrInvalidEntity)
			}
			assert.ErrorIs(t, got, tc.err, "original error should stay reachable")
		})
	}
}

// TestMapError_SQLiteConstraints provokes real constraint failures so the
// driver's own error codes are exercised.
func TestMapError_SQLiteConstraints(t *testing.T) {
	db, _ := testdb.NewSQLite(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO tasks (title, completed) VALUES (NULL, 0)`)
	require.Error(t, err)
	assert.True(t, sqlstore.IsNotNullViolation(err))
	assert.ErrorIs(t, sqlstore.MapError(err), store.ErrInvalidEntity)

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (title, completed) VALUES ('x', 2)`)
	require.Error(t, err)
	assert.True(t, sqlstore.IsCheckConstraintViolation(err))
	assert.ErrorIs(t, sqlstore.MapError(err), store.ErrInvalidEntity)
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, sqlstore.CheckRowsAffected(fakeResult{rows: 1}))
	assert.ErrorIs(t, sqlstore.CheckRowsAffected(fakeResult{rows: 0}), store.ErrTaskNotFound)
	assert.Error(t, sqlstore.CheckRowsAffected(fakeResult{err: errors.New("unsupported")}))
	assert.Error(t, sqlstore.CheckRowsAffected(nil))
}
