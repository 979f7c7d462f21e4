// Command check-db prints the tables of the configured database and every
// row of the tasks table. It reads the same configuration as the server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/sqlstore"
	"github.com/phrazzld/todo-api/internal/redact"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg.Database, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "check-db: %s\n", redact.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.DatabaseConfig, out io.Writer) error {
	if cwd, err := os.Getwd(); err == nil {
		fmt.Fprintln(out, "cwd", cwd)
	}

	if cfg.Driver == sqlstore.DriverSQLite {
		if path := sqlstore.SQLiteFile(cfg.DSN); path != "" {
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(out, "no db file found")
				return nil
			}
		}
	}

	db, dialect, err := sqlstore.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := sqlstore.ListTables(ctx, db, dialect)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	fmt.Fprintln(out, "tables", tables)

	tasks, err := sqlstore.ReadAllTasks(ctx, db)
	if err != nil {
		// A database without the tasks table is still worth inspecting.
		fmt.Fprintln(out, "query error", redact.Error(err))
		return nil
	}
	for _, task := range tasks {
		fmt.Fprintf(out, "row (%d, %q, %t)\n", task.ID, task.Title, task.Completed)
	}

	return nil
}
