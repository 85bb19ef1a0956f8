package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// NoteService defines the note lifecycle operations.
type NoteService interface {
	CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error)
	ListNotes(ctx context.Context, userID uuid.UUID, view model.NoteView, search string) ([]model.Note, error)
	GetNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, patch model.NotePatch) (model.Note, error)
	TrashNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error)
	RestoreNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error)
	PurgeNote(ctx context.Context, userID, noteID uuid.UUID) error
}

// Note handles HTTP endpoints for notes.
type Note struct {
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{
		noteService:    noteService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type noteResponse struct {
	Note model.Note `json:"note"`
}

type notesResponse struct {
	Notes []model.Note `json:"notes"`
}

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
	Pinned  bool   `json:"pinned"`
}

func (h *Note) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	view, err := model.ParseNoteView(query.Get("view"))
	if err != nil {
		handleError(w, r, h.logger, apiErrors.NewErrValidation("%s", err.Error()))
		return
	}

	notes, err := h.noteService.ListNotes(r.Context(), userID, view, query.Get("search"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, notesResponse{Notes: notes})
}

func (h *Note) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	note, err := h.noteService.CreateNote(r.Context(), model.CreateNoteParams{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Color:   req.Color,
		Pinned:  req.Pinned,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, noteResponse{Note: note})
}

func (h *Note) Get(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := h.target(w, r)
	if !ok {
		return
	}

	note, err := h.noteService.GetNote(r.Context(), userID, noteID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, noteResponse{Note: note})
}

// Update applies a partial update; absent fields are left as they are.
func (h *Note) Update(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := h.target(w, r)
	if !ok {
		return
	}

	var patch model.NotePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	note, err := h.noteService.UpdateNote(r.Context(), userID, noteID, patch)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, noteResponse{Note: note})
}

// Trash moves a note to trash. The note is kept until purged.
func (h *Note) Trash(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := h.target(w, r)
	if !ok {
		return
	}

	if _, err := h.noteService.TrashNote(r.Context(), userID, noteID); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "note moved to trash"})
}

func (h *Note) Restore(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := h.target(w, r)
	if !ok {
		return
	}

	note, err := h.noteService.RestoreNote(r.Context(), userID, noteID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, noteResponse{Note: note})
}

func (h *Note) Purge(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.noteService.PurgeNote(r.Context(), userID, noteID); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "note deleted permanently"})
}

func (h *Note) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return uuid.Nil, false
	}
	return userID, true
}

// target resolves the caller and the {id} path parameter.
func (h *Note) target(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := h.userID(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.logger, apiErrors.NewErrMalformedNoteID())
		return uuid.Nil, uuid.Nil, false
	}
	return userID, noteID, true
}
