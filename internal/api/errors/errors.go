// Package errors defines client-facing API errors and their HTTP status codes.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// APIError is an error that is safe to show to the client.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// As returns the APIError wrapped in err, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Is reports whether err is an APIError with the given status.
func Is(err error, status int) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Status == status
}

func NewErrValidation(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf("email %s is already taken", email)}
}

// NewErrInvalidCredentials is shared by unknown-email and wrong-password failures.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "invalid email or password"}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "missing authorization token"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "invalid authorization token"}
}

func NewErrNoteNotFound(id uuid.UUID) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf("note %s not found", id)}
}

func NewErrExportNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "export not found"}
}

func NewErrNoteNotInTrash(id uuid.UUID) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf("note %s must be in trash before it can be purged", id)}
}

// NewErrMalformedNoteID reports an unparsable note id the same way as a
// missing note. The raw path segment is never echoed back.
func NewErrMalformedNoteID() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "note not found"}
}

func NewErrInvalidRequestBody() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "invalid request body"}
}
