package handler

import (
	"net/http"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
)

// handleError writes err as a {"message"} body. Errors that are not API
// errors are logged and reported as a bare 500.
func handleError(w http.ResponseWriter, r *http.Request, logger *logger.Logger, err error) {
	if apiErr, ok := apiErrors.As(err); ok {
		writeJSON(w, apiErr.Status, messageResponse{Message: apiErr.Message})
		return
	}

	logger.Error("HTTP handler: internal error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err.Error())
	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal server error"})
}
