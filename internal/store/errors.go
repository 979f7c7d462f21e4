package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the store could not be reached or the
	// statement failed for reasons unrelated to the entity itself.
	ErrUnavailable = errors.New("store unavailable")

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError records which store operation failed on which entity. It
// wraps the driver error and sits beneath the sentinel the caller branches
// on, e.g. fmt.Errorf("%w: %w", ErrUnavailable, NewStoreError(...)).
type StoreError struct {
	Entity    string
	Operation string
	ID        int64
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Operation, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the driver error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a failure of operation on the entity with the
// given id. Use id 0 when no single row is addressed.
func NewStoreError(entity, operation string, id int64, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		ID:        id,
		Err:       err,
	}
}
