package model

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultNoteColor is assigned to notes created without a color.
const DefaultNoteColor = "default"

// NoteStore defines persistence operations for notes. Every lookup and
// mutation is scoped by owner: a note owned by someone else is reported as
// ErrNotFound.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Note, error)
	List(ctx context.Context, filter NoteFilter) ([]Note, error)
	ListAll(ctx context.Context, ownerID uuid.UUID) ([]Note, error)
	Update(ctx context.Context, note Note) (Note, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Note represents a stored note.
type Note struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	Pinned    bool      `json:"pinned"`
	Archived  bool      `json:"archived"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteState is the composite lifecycle state derived from the note flags.
type NoteState string

const (
	NoteStateActive   NoteState = "active"
	NoteStateArchived NoteState = "archived"
	NoteStateTrashed  NoteState = "trashed"
)

// State reports the bucket the note currently lives in. Trash wins over archive.
func (n Note) State() NoteState {
	switch {
	case n.Deleted:
		return NoteStateTrashed
	case n.Archived:
		return NoteStateArchived
	default:
		return NoteStateActive
	}
}

// InView reports whether the note belongs to the given listing view.
func (n Note) InView(view NoteView) bool {
	switch view {
	case NoteViewArchived:
		return n.State() == NoteStateArchived
	case NoteViewTrash:
		return n.State() == NoteStateTrashed
	default:
		return n.State() == NoteStateActive
	}
}

// Matches reports whether title or content contains term, ignoring case.
// An empty term matches every note.
func (n Note) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Content), term)
}

// NoteView selects one of the listing buckets.
type NoteView string

const (
	NoteViewActive   NoteView = "active"
	NoteViewArchived NoteView = "archived"
	NoteViewTrash    NoteView = "trash"
)

// ParseNoteView converts a query value into a NoteView. Empty and "all" are
// accepted as aliases of the active view.
func ParseNoteView(s string) (NoteView, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", string(NoteViewActive):
		return NoteViewActive, nil
	case string(NoteViewArchived):
		return NoteViewArchived, nil
	case string(NoteViewTrash):
		return NoteViewTrash, nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}

// NoteFilter describes a listing request.
type NoteFilter struct {
	OwnerID uuid.UUID
	View    NoteView
	Search  string
}

// SortNotes orders notes for presentation in view: pinned first in the active
// view only, then most recently updated. Remaining ties fall back to creation
// time and id so the order is stable across stores.
func SortNotes(notes []Note, view NoteView) {
	slices.SortStableFunc(notes, func(a, b Note) int {
		if view == NoteViewActive && a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}

// CreateNoteParams contains parameters to create a note.
type CreateNoteParams struct {
	UserID  uuid.UUID
	Title   string
	Content string
	Color   string
	Pinned  bool
}

// NotePatch carries a partial update. Nil fields are left untouched.
type NotePatch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Color    *string `json:"color"`
	Pinned   *bool   `json:"pinned"`
	Archived *bool   `json:"archived"`
	Deleted  *bool   `json:"deleted"`
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Color == nil &&
		p.Pinned == nil && p.Archived == nil && p.Deleted == nil
}

// ExportResult describes an uploaded notes export.
type ExportResult struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
