package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/redact"
	"github.com/phrazzld/todo-api/internal/store"
)

const (
	listTasksQuery  = `SELECT id, title, completed FROM tasks ORDER BY id`
	getTaskQuery    = `SELECT id, title, completed FROM tasks WHERE id = ?`
	insertTaskQuery = `INSERT INTO tasks (title, completed) VALUES (?, ?)`
	updateTaskQuery = `UPDATE tasks SET title = ?, completed = ? WHERE id = ?`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`
)

// SQLTaskStore implements the store.TaskStore interface on database/sql.
// Every call checks out its own connection and returns it before the call
// ends; the pool is the only state shared between requests.
type SQLTaskStore struct {
	db      store.ConnProvider
	dialect Dialect
	logger  *slog.Logger

	getQuery    string
	insertQuery string
	updateQuery string
	deleteQuery string
}

// NewSQLTaskStore creates a task store over the given pool.
// If logger is nil, a default logger will be used.
func NewSQLTaskStore(db store.ConnProvider, dialect Dialect, logger *slog.Logger) *SQLTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	insert := insertTaskQuery
	if dialect.returningID {
		insert += ` RETURNING id`
	}

	return &SQLTaskStore{
		db:          db,
		dialect:     dialect,
		logger:      logger.With(slog.String("component", "task_store")),
		getQuery:    dialect.Rebind(getTaskQuery),
		insertQuery: dialect.Rebind(insert),
		updateQuery: dialect.Rebind(updateTaskQuery),
		deleteQuery: dialect.Rebind(deleteTaskQuery),
	}
}

// Ensure SQLTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*SQLTaskStore)(nil)

// withConn runs fn on a dedicated connection and releases it afterwards.
func (s *SQLTaskStore) withConn(ctx context.Context, fn func(conn store.DBTX) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logger.FromContextOrDefault(ctx, s.logger).Warn("failed to release connection",
				slog.String("error", redact.Error(cerr)))
		}
	}()

	return fn(conn)
}

// List implements store.TaskStore.List.
// A store failure is logged and reported as an empty list.
func (s *SQLTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var tasks []*domain.Task
	err := s.withConn(ctx, func(conn store.DBTX) error {
		var err error
		tasks, err = ReadAllTasks(ctx, conn)
		return err
	})
	if err != nil {
		log.Error("failed to list tasks, returning empty result",
			slog.String("error", redact.Error(err)))
		return []*domain.Task{}, nil
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist or cannot be read.
func (s *SQLTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	var task *domain.Task
	err := s.withConn(ctx, func(conn store.DBTX) error {
		var completed int64
		t := &domain.Task{}
		if err := conn.QueryRowContext(ctx, s.getQuery, id).Scan(&t.ID, &t.Title, &completed); err != nil {
			return MapError(err)
		}
		t.Completed = completed != 0
		task = t
		return nil
	})

	switch {
	case err == nil:
		return task, nil
	case store.IsNotFoundError(err):
		log.Debug("task not found", slog.Int64("task_id", id))
		return nil, store.ErrTaskNotFound
	default:
		log.Error("failed to get task, reporting not found",
			slog.Int64("task_id", id),
			slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("%w: %w", store.ErrTaskNotFound, store.NewStoreError("task", "get", id, err))
	}
}

// Create implements store.TaskStore.Create.
// On success task.ID holds the store-assigned ID.
// Returns store.ErrInvalidEntity for invalid tasks and store.ErrUnavailable
// when the insert could not be performed.
func (s *SQLTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var id int64
	err := s.withConn(ctx, func(conn store.DBTX) error {
		if s.dialect.returningID {
			return conn.QueryRowContext(ctx, s.insertQuery, task.Title, boolToInt(task.Completed)).Scan(&id)
		}

		result, err := conn.ExecContext(ctx, s.insertQuery, task.Title, boolToInt(task.Completed))
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		err = MapError(err)
		if errors.Is(err, store.ErrInvalidEntity) {
			log.Warn("task rejected by database constraint", slog.String("error", redact.Error(err)))
			return err
		}
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: %w", store.ErrUnavailable, store.NewStoreError("task", "create", 0, err))
	}

	task.ID = id

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.Bool("completed", task.Completed))
	return nil
}

// Update implements store.TaskStore.Update.
// Returns store.ErrTaskNotFound if no task has task.ID or the update could
// not be performed.
func (s *SQLTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := s.withConn(ctx, func(conn store.DBTX) error {
		result, err := conn.ExecContext(ctx, s.updateQuery, task.Title, boolToInt(task.Completed), task.ID)
		if err != nil {
			return MapError(err)
		}
		return CheckRowsAffected(result)
	})

	return s.degradeToNotFound(log, "update", task.ID, err)
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound if the task does not exist or the delete
// could not be performed.
func (s *SQLTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.withConn(ctx, func(conn store.DBTX) error {
		result, err := conn.ExecContext(ctx, s.deleteQuery, id)
		if err != nil {
			return err
		}
		return CheckRowsAffected(result)
	})

	return s.degradeToNotFound(log, "delete", id, err)
}

func (s *SQLTaskStore) degradeToNotFound(log *slog.Logger, op string, id int64, err error) error {
	switch {
	case err == nil:
		log.Info("task "+op+"d successfully", slog.Int64("task_id", id))
		return nil
	case store.IsNotFoundError(err):
		log.Debug("task not found", slog.String("operation", op), slog.Int64("task_id", id))
		return store.ErrTaskNotFound
	case errors.Is(err, store.ErrInvalidEntity):
		return err
	default:
		log.Error("failed to "+op+" task, reporting not found",
			slog.Int64("task_id", id),
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: %w", store.ErrTaskNotFound, store.NewStoreError("task", op, id, err))
	}
}

// ReadAllTasks returns every row of the tasks table ordered by ID, reporting
// failures instead of degrading. On success the slice is never nil.
func ReadAllTasks(ctx context.Context, db store.DBTX) ([]*domain.Task, error) {
	rows, err := db.QueryContext(ctx, listTasksQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		var completed int64
		t := &domain.Task{}
		if err := rows.Scan(&t.ID, &t.Title, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		t.Completed = completed != 0
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
