package sqlstore

import (
	"context"
	"fmt"

	"github.com/phrazzld/todo-api/internal/store"
)

// EnsureSchema creates the tasks table if it does not exist yet.
// It is safe to call on every startup.
func EnsureSchema(ctx context.Context, db store.DBTX, dialect Dialect) error {
	if _, err := db.ExecContext(ctx, dialect.createTasksTable); err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}
	return nil
}

// ListTables returns the names of the tables visible to the connection.
func ListTables(ctx context.Context, db store.DBTX, dialect Dialect) ([]string, error) {
	rows, err := db.QueryContext(ctx, dialect.listTables)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table names: %w", err)
	}
	return tables, nil
}
