package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db DBTX
}

func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

const noteColumns = `id, owner_id, title, content, color, pinned, archived, deleted, created_at, updated_at`

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `INSERT INTO notes (id, owner_id, title, content, color, pinned, archived, deleted, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + noteColumns

	saved, err := scanNote(r.db.QueryRowContext(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Content, note.Color,
		note.Pinned, note.Archived, note.Deleted, note.CreatedAt, note.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Note{}, model.ErrAlreadyExists
		}
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return saved, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND owner_id = $2`

	note, err := scanNote(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

// List selects one view of the owner's notes. The trash view ignores the
// archived flag; the other two require deleted = false.
func (r *NoteRepository) List(ctx context.Context, filter model.NoteFilter) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
			  WHERE owner_id = $1
			    AND deleted = $2
			    AND (deleted OR archived = $3)
			    AND ($4 = '' OR title ILIKE $4 ESCAPE '\' OR content ILIKE $4 ESCAPE '\')
			  ORDER BY CASE WHEN $5 THEN pinned ELSE false END DESC,
			           updated_at DESC, created_at DESC, id`

	pattern := ""
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern = "%" + escapeLike(term) + "%"
	}

	rows, err := r.db.QueryContext(ctx, query,
		filter.OwnerID,
		filter.View == model.NoteViewTrash,
		filter.View == model.NoteViewArchived,
		pattern,
		filter.View == model.NoteViewActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return collectNotes(rows)
}

func (r *NoteRepository) ListAll(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE owner_id = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list all notes: %w", err)
	}

	return collectNotes(rows)
}

// Update writes the mutable fields of an owned note.
func (r *NoteRepository) Update(ctx context.Context, note model.Note) (model.Note, error) {
	query := `UPDATE notes
			  SET title = $3, content = $4, color = $5, pinned = $6, archived = $7, deleted = $8, updated_at = $9
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + noteColumns

	saved, err := scanNote(r.db.QueryRowContext(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Content, note.Color,
		note.Pinned, note.Archived, note.Deleted, note.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return saved, nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (model.Note, error) {
	var note model.Note
	err := row.Scan(
		&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.Color,
		&note.Pinned, &note.Archived, &note.Deleted, &note.CreatedAt, &note.UpdatedAt,
	)
	return note, err
}

func collectNotes(rows *sql.Rows) ([]model.Note, error) {
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
