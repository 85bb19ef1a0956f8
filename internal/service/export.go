package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// exportDocument is the JSON layout written to object storage.
type exportDocument struct {
	UserID     uuid.UUID    `json:"userId"`
	ExportedAt time.Time    `json:"exportedAt"`
	Notes      []model.Note `json:"notes"`
}

// Export snapshots a user's notes into object storage.
type Export struct {
	noteStore model.NoteStore
	storage   model.Storage
	logger    *logger.Logger
	now       func() time.Time
}

func NewExport(noteStore model.NoteStore, storage model.Storage, logger *logger.Logger) *Export {
	return &Export{
		noteStore: noteStore,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

// ExportNotes uploads every note of userID, in every view, as one JSON document.
func (s *Export) ExportNotes(ctx context.Context, userID uuid.UUID) (model.ExportResult, error) {
	notes, err := s.noteStore.ListAll(ctx, userID)
	if err != nil {
		return model.ExportResult{}, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = []model.Note{}
	}
	slices.SortStableFunc(notes, func(a, b model.Note) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	now := s.now().UTC()
	payload, err := json.Marshal(exportDocument{UserID: userID, ExportedAt: now, Notes: notes})
	if err != nil {
		return model.ExportResult{}, fmt.Errorf("failed to marshal export: %w", err)
	}

	key := fmt.Sprintf("%sexport-%d.json", exportPrefix(userID), now.UnixNano())
	if err := s.storage.Upload(ctx, key, bytes.NewReader(payload)); err != nil {
		s.logger.Error("Export service: failed to upload export",
			"user_id", userID,
			"key", key,
			"error", err.Error())
		return model.ExportResult{}, fmt.Errorf("failed to upload export: %w", err)
	}

	s.logger.Info("Export service: notes exported",
		"user_id", userID,
		"key", key,
		"count", len(notes))

	return model.ExportResult{Key: key, Count: len(notes)}, nil
}

// OpenExport streams a previous export. Keys outside the caller's prefix are
// reported as missing.
func (s *Export) OpenExport(ctx context.Context, userID uuid.UUID, key string) (io.ReadCloser, error) {
	if !strings.HasPrefix(key, exportPrefix(userID)) || strings.Contains(key, "..") {
		return nil, apiErrors.NewErrExportNotFound()
	}

	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to stat export: %w", err)
	}
	if !exists {
		return nil, apiErrors.NewErrExportNotFound()
	}

	reader, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download export: %w", err)
	}
	return reader, nil
}

func exportPrefix(userID uuid.UUID) string {
	return fmt.Sprintf("user-%s/", userID)
}
