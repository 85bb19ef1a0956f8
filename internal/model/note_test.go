package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_State(t *testing.T) {
	tests := []struct {
		name string
		note Note
		want NoteState
	}{
		{name: "active", note: Note{}, want: NoteStateActive},
		{name: "archived", note: Note{Archived: true}, want: NoteStateArchived},
		{name: "trashed", note: Note{Deleted: true}, want: NoteStateTrashed},
		{name: "trashed while archived", note: Note{Deleted: true, Archived: true}, want: NoteStateTrashed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.note.State())
		})
	}
}

func TestNote_InView(t *testing.T) {
	archivedTrashed := Note{Archived: true, Deleted: true}

	assert.True(t, archivedTrashed.InView(NoteViewTrash))
	assert.False(t, archivedTrashed.InView(NoteViewArchived))
	assert.False(t, archivedTrashed.InView(NoteViewActive))

	pinnedArchived := Note{Archived: true, Pinned: true}
	assert.True(t, pinnedArchived.InView(NoteViewArchived))
	assert.False(t, pinnedArchived.InView(NoteViewActive))
}

func TestNote_Matches(t *testing.T) {
	n := Note{Title: "Shopping", Content: "Milk, Eggs"}

	assert.True(t, n.Matches(""))
	assert.True(t, n.Matches("  "))
	assert.True(t, n.Matches("shop"))
	assert.True(t, n.Matches("EGGS"))
	assert.False(t, n.Matches("bread"))
}

func TestParseNoteView(t *testing.T) {
	tests := []struct {
		in      string
		want    NoteView
		wantErr bool
	}{
		{in: "", want: NoteViewActive},
		{in: "all", want: NoteViewActive},
		{in: "active", want: NoteViewActive},
		{in: "Archived", want: NoteViewArchived},
		{in: "trash", want: NoteViewTrash},
		{in: "deleted", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNoteView(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortNotes(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	pinnedOld := Note{ID: uuid.New(), Title: "A", Pinned: true, UpdatedAt: t1}
	plainNew := Note{ID: uuid.New(), Title: "B", UpdatedAt: t2}
	plainNewest := Note{ID: uuid.New(), Title: "C", UpdatedAt: t3}

	t.Run("active view puts pinned first", func(t *testing.T) {
		notes := []Note{plainNew, plainNewest, pinnedOld}
		SortNotes(notes, NoteViewActive)
		assert.Equal(t, []string{"A", "C", "B"}, titles(notes))
	})

	t.Run("other views ignore pinned", func(t *testing.T) {
		notes := []Note{plainNew, pinnedOld, plainNewest}
		SortNotes(notes, NoteViewArchived)
		assert.Equal(t, []string{"C", "B", "A"}, titles(notes))
	})
}

func TestNotePatch_IsEmpty(t *testing.T) {
	assert.True(t, NotePatch{}.IsEmpty())
	pinned := true
	assert.False(t, NotePatch{Pinned: &pinned}.IsEmpty())
}

func TestUser_Public(t *testing.T) {
	u := User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", PasswordHash: []byte("hash")}
	p := u.Public()

	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, "ann@x.com", p.Email)
}

func titles(notes []Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}
