package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// ExportService defines note export operations.
type ExportService interface {
	ExportNotes(ctx context.Context, userID uuid.UUID) (model.ExportResult, error)
	OpenExport(ctx context.Context, userID uuid.UUID, key string) (io.ReadCloser, error)
}

// Export handles HTTP endpoints for note exports.
type Export struct {
	exportService  ExportService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewExport(exportService ExportService, contextManager model.ContextManager, logger *logger.Logger) *Export {
	return &Export{
		exportService:  exportService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Export) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	result, err := h.exportService.ExportNotes(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Download streams a previously created export. The object key is the
// remainder of the path.
func (h *Export) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	reader, err := h.exportService.OpenExport(r.Context(), userID, chi.URLParam(r, "*"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("Export handler: failed to stream export",
			"user_id", userID,
			"error", err.Error())
	}
}
