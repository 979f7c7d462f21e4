package domain

import "errors"

// ErrEmptyTaskTitle is returned when a task has no title.
var ErrEmptyTaskTitle = errors.New("task title cannot be empty")

// Task is the single resource managed by the service: a titled item that
// is either completed or not. The ID is assigned by the store on creation.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewTask creates a Task that has not yet been persisted (ID is zero).
// Returns an error if validation fails.
func NewTask(title string, completed bool) (*Task, error) {
	task := &Task{
		Title:     title,
		Completed: completed,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the task can be persisted.
// Only the title is constrained; whitespace-only titles are accepted.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	return nil
}
