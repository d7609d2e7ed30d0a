package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/common"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/dbx"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// SQLiteRepository implements Repository over a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const todoColumns = `id, body, completed, created_at, updated_at, target_date, deleted`

// Upsert inserts or replaces a todo by id.
func (r *SQLiteRepository) Upsert(ctx context.Context, td *models.Todo) error {
	query := `INSERT INTO todos (` + todoColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body,
			completed = excluded.completed,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			target_date = excluded.target_date,
			deleted = excluded.deleted
	`
	_, err := r.db.ExecContext(ctx, query,
		td.ID, td.Text, td.Completed, td.CreatedAt, td.UpdatedAt, td.TargetDate, td.Deleted)
	if err != nil {
		return fmt.Errorf("failed to upsert todo: %w", err)
	}
	return nil
}

// GetAll lists all non-deleted todos.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Todo, error) {
	return r.list(ctx, `SELECT `+todoColumns+` FROM todos WHERE deleted = 0`)
}

// GetAllIncludingDeleted lists every todo, tombstones included.
func (r *SQLiteRepository) GetAllIncludingDeleted(ctx context.Context) ([]models.Todo, error) {
	return r.list(ctx, `SELECT `+todoColumns+` FROM todos`)
}

// GetByTargetDate lists non-deleted todos bucketed under one calendar day.
func (r *SQLiteRepository) GetByTargetDate(ctx context.Context, date string) ([]models.Todo, error) {
	return r.list(ctx, `SELECT `+todoColumns+` FROM todos WHERE deleted = 0 AND target_date = ?`, date)
}

// GetByID returns a single non-deleted todo, or common.ErrNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = ? AND deleted = 0`, id)
	td := &models.Todo{}
	err := row.Scan(&td.ID, &td.Text, &td.Completed, &td.CreatedAt, &td.UpdatedAt, &td.TargetDate, &td.Deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return td, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select todos: %w", err)
	}
	defer rows.Close()

	var result []models.Todo
	for rows.Next() {
		var td models.Todo
		if err := rows.Scan(&td.ID, &td.Text, &td.Completed, &td.CreatedAt, &td.UpdatedAt, &td.TargetDate, &td.Deleted); err != nil {
			return nil, err
		}
		result = append(result, td)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
