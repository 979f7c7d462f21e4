package store

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
//
// Reads, updates and deletes degrade instead of failing: when the store
// cannot be reached, List yields an empty slice and the single-row
// operations report ErrTaskNotFound (wrapping the cause). Only Create
// surfaces connectivity failures, wrapped in ErrUnavailable.
type TaskStore interface {
	// List returns every task ordered by ID.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create inserts the task and sets task.ID to the store-assigned value.
	// Returns ErrInvalidEntity if the task fails validation.
	Create(ctx context.Context, task *domain.Task) error

	// Update overwrites title and completed of the task with task.ID.
	// Returns ErrTaskNotFound if no such task exists.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if no such task exists.
	Delete(ctx context.Context, id int64) error
}
