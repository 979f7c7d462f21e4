package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/sqlstore"
	"github.com/phrazzld/todo-api/internal/redact"
)

// setupAppDatabase establishes a connection to the configured database and
// makes sure the tasks table exists.
func setupAppDatabase(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*sql.DB, sqlstore.Dialect, error) {
	db, dialect, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("Database connection failed", "error", redact.Error(err))
		return nil, sqlstore.Dialect{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := sqlstore.EnsureSchema(ctx, db, dialect); err != nil {
		_ = db.Close()
		logger.Error("Schema setup failed", "error", redact.Error(err))
		return nil, sqlstore.Dialect{}, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("Database connection established", "driver", dialect.Name())
	return db, dialect, nil
}
