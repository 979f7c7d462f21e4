package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// Client-facing error messages.
const (
	msgInvalidID     = "invalid id"
	msgMissingID     = "missing id"
	msgInvalidJSON   = "invalid json"
	msgMissingTitle  = "missing title"
	msgDatabaseError = "database error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyTaskTitle),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidFormat):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the fixed client message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return msgDatabaseError
	case errors.Is(err, domain.ErrInvalidID):
		return msgInvalidID
	case errors.Is(err, domain.ErrInvalidFormat):
		return msgInvalidJSON
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrEmptyTaskTitle),
		errors.Is(err, domain.ErrValidation):
		return msgMissingTitle
	case errors.Is(err, store.ErrNotFound):
		return "task not found"
	default:
		return msgDatabaseError
	}
}

// respondWithStoreError writes the response for an error returned by the
// store. Not-found responses carry no body.
func respondWithStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusNotFound {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
