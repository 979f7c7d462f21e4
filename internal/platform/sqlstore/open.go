package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/phrazzld/todo-api/internal/config"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const pingTimeout = 5 * time.Second

// Open opens a connection pool for the configured driver, applies the pool
// limits and verifies the database answers a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, Dialect{}, err
	}

	dsn, err := prepareDSN(dialect, cfg.DSN)
	if err != nil {
		return nil, Dialect{}, err
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("failed to open %s database: %w", dialect.Name(), err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if lifetime := cfg.ConnMaxLifetime(); lifetime > 0 {
		db.SetConnMaxLifetime(lifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, Dialect{}, fmt.Errorf("failed to ping %s database: %w", dialect.Name(), err)
	}

	return db, dialect, nil
}

// prepareDSN applies driver-specific settings the store relies on.
func prepareDSN(dialect Dialect, dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return "", fmt.Errorf("database dsn is required")
	}

	switch dialect.Name() {
	case DriverSQLite:
		if strings.HasPrefix(dsn, "file:") || strings.Contains(dsn, "?") {
			return dsn, nil
		}
		return filepath.Clean(dsn) + "?_pragma=busy_timeout(5000)", nil
	case DriverMySQL:
		mysqlCfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		// Report matched rather than changed rows so that an update that
		// rewrites identical values is not mistaken for a missing task.
		mysqlCfg.ClientFoundRows = true
		return mysqlCfg.FormatDSN(), nil
	default:
		return dsn, nil
	}
}

// SQLiteFile returns the filesystem path named by a SQLite DSN, or "" for
// an in-memory database.
func SQLiteFile(dsn string) string {
	path := strings.TrimPrefix(strings.TrimSpace(dsn), "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	return filepath.Clean(path)
}
