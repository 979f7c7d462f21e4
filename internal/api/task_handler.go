package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	store  store.TaskStore
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if taskStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskStore cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		store:  taskStore,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// Routes returns a router serving the task collection at "/" and single
// tasks at "/{id}". Mount it under the collection's base path.
func (h *TaskHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListTasks)
	r.Post("/", h.CreateTask)
	r.Put("/", h.MissingID)
	r.Delete("/", h.MissingID)

	r.Get("/{id}", h.GetTask)
	r.Put("/{id}", h.UpdateTask)
	r.Delete("/{id}", h.DeleteTask)

	return r
}

// ListTasks handles GET / requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.store.List(r.Context())
	if err != nil {
		log.Error("listing tasks failed, returning empty list", slog.String("error", err.Error()))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	task, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST / requests.
// It responds 201 with the stored task, including its assigned ID.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := decodeTaskRequest(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	task, err := domain.NewTask(req.Title, req.Completed)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.store.Create(r.Context(), task); err != nil {
		respondWithStoreError(w, r, err)
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /{id} requests.
// Title and completed are replaced; the ID always comes from the path.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	req, err := decodeTaskRequest(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	task, err := domain.NewTask(req.Title, req.Completed)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}
	task.ID = id

	if err := h.store.Update(r.Context(), task); err != nil {
		respondWithStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respondWithStoreError(w, r, err)
		return
	}

	shared.RespondWithStatus(w, http.StatusNoContent)
}

// MissingID answers PUT and DELETE on the collection itself.
func (h *TaskHandler) MissingID(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusBadRequest, msgMissingID)
}

// decodeTaskRequest reads and validates a TaskRequest. An empty or null
// body counts as a request without a title.
func decodeTaskRequest(r *http.Request) (*TaskRequest, error) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("title", "is required", domain.ErrValidation)
		}
		return nil, domain.NewValidationError("body", "is not valid JSON", domain.ErrInvalidFormat)
	}

	if err := shared.ValidateRequest(&req); err != nil {
		return nil, domain.NewValidationError("title", "is required", domain.ErrValidation)
	}
	return &req, nil
}
