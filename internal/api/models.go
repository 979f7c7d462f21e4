package api

import "github.com/phrazzld/todo-api/internal/domain"

// TaskRequest is the request body for creating or replacing a task.
// An id in the body is ignored; the path decides which task is updated.
type TaskRequest struct {
	Title     string `json:"title"     validate:"required"`
	Completed bool   `json:"completed"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
	}
}

// tasksToResponse never returns nil so an empty list encodes as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
