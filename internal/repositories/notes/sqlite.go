package notes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/common"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/dbx"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx), so the merge path can run it inside a transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const noteColumns = `id, title, content, created_at, updated_at, tags, is_favorite, color, mood, sort_order, note_type, deleted`

// Upsert inserts or replaces a note by id. All columns are written; the
// merge engine replaces whole records, never individual fields.
func (r *SQLiteRepository) Upsert(ctx context.Context, n *models.Note) error {
	tags, err := json.Marshal(n.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	query := `INSERT INTO notes (` + noteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title,
			content = excluded.content,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			tags = excluded.tags,
			is_favorite = excluded.is_favorite,
			color = excluded.color,
			mood = excluded.mood,
			sort_order = excluded.sort_order,
			note_type = excluded.note_type,
			deleted = excluded.deleted
	`
	_, err = r.db.ExecContext(ctx, query,
		n.ID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt, string(tags),
		n.IsFavorite, n.Color, n.Mood, n.Order, string(n.Type), n.Deleted)
	if err != nil {
		return fmt.Errorf("failed to upsert note: %w", err)
	}
	return nil
}

// GetAll lists all non-deleted notes.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	return r.list(ctx, `SELECT `+noteColumns+` FROM notes WHERE deleted = 0`)
}

// GetAllIncludingDeleted lists every note, tombstones included.
func (r *SQLiteRepository) GetAllIncludingDeleted(ctx context.Context) ([]models.Note, error) {
	return r.list(ctx, `SELECT `+noteColumns+` FROM notes`)
}

// GetByID returns a single non-deleted note, or common.ErrNotFound. A
// soft-deleted note is reported as not found.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ? AND deleted = 0`, id)
	n, err := scanNote(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []models.Note
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanNote(scan func(dest ...any) error) (*models.Note, error) {
	var n models.Note
	var tags, noteType string
	if err := scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
		&tags, &n.IsFavorite, &n.Color, &n.Mood, &n.Order, &noteType, &n.Deleted); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &n.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	n.Type = models.NoteType(noteType)
	return &n, nil
}
