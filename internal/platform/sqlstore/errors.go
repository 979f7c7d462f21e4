package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-api/internal/store"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// PostgreSQL error codes
const (
	pgNotNullViolationCode = "23502"
	pgCheckViolationCode   = "23514"
)

// MySQL error numbers
const (
	mysqlBadNullError        = 1048 // ER_BAD_NULL_ERROR
	mysqlCheckConstraintCode = 3819 // ER_CHECK_CONSTRAINT_VIOLATED
)

// MapError maps a driver error to the matching store error, wrapping the
// original so that errors.As still reaches the driver type.
// Errors without a specific mapping are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	if IsNotNullViolation(err) {
		return fmt.Errorf("%w: not null violation: %w", store.ErrInvalidEntity, err)
	}

	if IsCheckConstraintViolation(err) {
		return fmt.Errorf("%w: check constraint violation: %w", store.ErrInvalidEntity, err)
	}

	return err
}

// IsNotNullViolation reports whether err is a NOT NULL constraint failure
// from any of the supported drivers.
func IsNotNullViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgNotNullViolationCode
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlBadNullError
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_NOTNULL
	}

	return false
}

// IsCheckConstraintViolation reports whether err is a CHECK constraint
// failure from any of the supported drivers.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCheckViolationCode
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlCheckConstraintCode
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_CHECK
	}

	return false
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns store.ErrTaskNotFound.
func CheckRowsAffected(result sql.Result) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}
