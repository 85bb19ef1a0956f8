package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]model.Note
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{notes: make(map[uuid.UUID]model.Note)}
}

func (r *NoteRepository) Create(_ context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.notes[note.ID]; taken {
		return model.Note{}, model.ErrAlreadyExists
	}
	r.notes[note.ID] = note
	return note, nil
}

func (r *NoteRepository) GetByID(_ context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.owned(ownerID, id)
}

func (r *NoteRepository) List(_ context.Context, filter model.NoteFilter) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var notes []model.Note
	for _, n := range r.notes {
		if n.OwnerID != filter.OwnerID || !n.InView(filter.View) || !n.Matches(filter.Search) {
			continue
		}
		notes = append(notes, n)
	}
	model.SortNotes(notes, filter.View)
	return notes, nil
}

func (r *NoteRepository) ListAll(_ context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var notes []model.Note
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// Update replaces the mutable fields of an owned note. Owner and creation
// time are kept from the stored row.
func (r *NoteRepository) Update(_ context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.owned(note.OwnerID, note.ID)
	if err != nil {
		return model.Note{}, err
	}

	stored.Title = note.Title
	stored.Content = note.Content
	stored.Color = note.Color
	stored.Pinned = note.Pinned
	stored.Archived = note.Archived
	stored.Deleted = note.Deleted
	stored.UpdatedAt = note.UpdatedAt
	r.notes[stored.ID] = stored
	return stored, nil
}

func (r *NoteRepository) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.owned(ownerID, id); err != nil {
		return err
	}
	delete(r.notes, id)
	return nil
}

func (r *NoteRepository) owned(ownerID, id uuid.UUID) (model.Note, error) {
	n, ok := r.notes[id]
	if !ok || n.OwnerID != ownerID {
		return model.Note{}, model.ErrNotFound
	}
	return n, nil
}
