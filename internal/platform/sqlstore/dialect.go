package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
)

// Driver names as configured in database.driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Dialect describes how one database engine spells the statements the
// task store needs.
type Dialect struct {
	name string

	// driverName is the name registered with database/sql.
	driverName string

	// numbered placeholders ($1, $2) instead of '?'.
	numbered bool

	// returningID means INSERT ... RETURNING id is used instead of
	// sql.Result.LastInsertId, which pgx does not support.
	returningID bool

	createTasksTable string
	listTables       string
}

var (
	// SQLite is the dialect of modernc.org/sqlite.
	SQLite = Dialect{
		name:       DriverSQLite,
		driverName: "sqlite",
		createTasksTable: `CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL CHECK (completed IN (0, 1))
		)`,
		listTables: `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`,
	}

	// Postgres is the dialect of github.com/jackc/pgx/v5/stdlib.
	Postgres = Dialect{
		name:        DriverPostgres,
		driverName:  "pgx",
		numbered:    true,
		returningID: true,
		createTasksTable: `CREATE TABLE IF NOT EXISTS tasks (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			completed SMALLINT NOT NULL CHECK (completed IN (0, 1))
		)`,
		listTables: `SELECT table_name FROM information_schema.tables
			WHERE table_schema = current_schema() ORDER BY table_name`,
	}

	// MySQL is the dialect of github.com/go-sql-driver/mysql.
	MySQL = Dialect{
		name:       DriverMySQL,
		driverName: "mysql",
		createTasksTable: `CREATE TABLE IF NOT EXISTS tasks (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			title TEXT NOT NULL,
			completed TINYINT NOT NULL CHECK (completed IN (0, 1))
		)`,
		listTables: `SELECT table_name FROM information_schema.tables
			WHERE table_schema = DATABASE() ORDER BY table_name`,
	}
)

// DialectFor returns the dialect for a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite:
		return SQLite, nil
	case DriverPostgres:
		return Postgres, nil
	case DriverMySQL:
		return MySQL, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Name returns the configured driver name of the dialect.
func (d Dialect) Name() string {
	return d.name
}

// DriverName returns the name the driver registers with database/sql.
func (d Dialect) DriverName() string {
	return d.driverName
}

// Rebind rewrites '?' placeholders into the dialect's bind variable style.
// Queries passed here must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
