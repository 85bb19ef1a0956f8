package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// Note implements the note lifecycle for a single owner at a time. Lookups of
// notes owned by someone else are indistinguishable from missing notes.
type Note struct {
	noteStore model.NoteStore
	logger    *logger.Logger
	now       func() time.Time
}

func NewNote(noteStore model.NoteStore, logger *logger.Logger) *Note {
	return &Note{
		noteStore: noteStore,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Note) CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error) {
	if err := requireText("title", params.Title); err != nil {
		return model.Note{}, err
	}
	if err := requireText("content", params.Content); err != nil {
		return model.Note{}, err
	}

	color := strings.TrimSpace(params.Color)
	if color == "" {
		color = model.DefaultNoteColor
	}

	now := s.now().UTC()
	note, err := s.noteStore.Create(ctx, model.Note{
		ID:        uuid.New(),
		OwnerID:   params.UserID,
		Title:     params.Title,
		Content:   params.Content,
		Color:     color,
		Pinned:    params.Pinned,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("Note service: failed to create note",
			"user_id", params.UserID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Debug("Note service: note created",
		"user_id", params.UserID,
		"note_id", note.ID)

	return note, nil
}

// ListNotes returns the caller's notes in view, optionally narrowed by a
// case-insensitive search over title and content.
func (s *Note) ListNotes(ctx context.Context, userID uuid.UUID, view model.NoteView, search string) ([]model.Note, error) {
	notes, err := s.noteStore.List(ctx, model.NoteFilter{
		OwnerID: userID,
		View:    view,
		Search:  strings.TrimSpace(search),
	})
	if err != nil {
		s.logger.Error("Note service: failed to list notes",
			"user_id", userID,
			"view", view,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

func (s *Note) GetNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, userID, noteID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, apiErrors.NewErrNoteNotFound(noteID)
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}
	return note, nil
}

// UpdateNote applies a partial update. Flags are independent: archiving keeps
// the pinned flag and the deleted flag moves the note in or out of trash.
func (s *Note) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, patch model.NotePatch) (model.Note, error) {
	if patch.Title != nil {
		if err := requireText("title", *patch.Title); err != nil {
			return model.Note{}, err
		}
	}
	if patch.Content != nil {
		if err := requireText("content", *patch.Content); err != nil {
			return model.Note{}, err
		}
	}

	note, err := s.GetNote(ctx, userID, noteID)
	if err != nil {
		return model.Note{}, err
	}
	if patch.IsEmpty() {
		return note, nil
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Color != nil {
		note.Color = strings.TrimSpace(*patch.Color)
		if note.Color == "" {
			note.Color = model.DefaultNoteColor
		}
	}
	if patch.Pinned != nil {
		note.Pinned = *patch.Pinned
	}
	if patch.Archived != nil {
		note.Archived = *patch.Archived
	}
	if patch.Deleted != nil {
		note.Deleted = *patch.Deleted
	}

	return s.save(ctx, note)
}

// TrashNote moves a note to trash. Trashing a trashed note is a no-op.
func (s *Note) TrashNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	note, err := s.GetNote(ctx, userID, noteID)
	if err != nil {
		return model.Note{}, err
	}
	if note.Deleted {
		return note, nil
	}
	note.Deleted = true
	return s.save(ctx, note)
}

// RestoreNote takes a note out of trash. The archived flag is untouched, so
// the note returns to the bucket it was trashed from.
func (s *Note) RestoreNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	note, err := s.GetNote(ctx, userID, noteID)
	if err != nil {
		return model.Note{}, err
	}
	if !note.Deleted {
		return note, nil
	}
	note.Deleted = false
	return s.save(ctx, note)
}

// PurgeNote permanently removes a trashed note.
func (s *Note) PurgeNote(ctx context.Context, userID, noteID uuid.UUID) error {
	note, err := s.GetNote(ctx, userID, noteID)
	if err != nil {
		return err
	}
	if note.State() != model.NoteStateTrashed {
		return apiErrors.NewErrNoteNotInTrash(noteID)
	}

	err = s.noteStore.Delete(ctx, userID, noteID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrNoteNotFound(noteID)
	}
	if err != nil {
		s.logger.Error("Note service: failed to purge note",
			"user_id", userID,
			"note_id", noteID,
			"error", err.Error())
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("Note service: note purged",
		"user_id", userID,
		"note_id", noteID)

	return nil
}

func (s *Note) save(ctx context.Context, note model.Note) (model.Note, error) {
	note.UpdatedAt = s.now().UTC()

	saved, err := s.noteStore.Update(ctx, note)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, apiErrors.NewErrNoteNotFound(note.ID)
	}
	if err != nil {
		s.logger.Error("Note service: failed to update note",
			"user_id", note.OwnerID,
			"note_id", note.ID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}
	return saved, nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apiErrors.NewErrValidation("%s is required", field)
	}
	return nil
}
