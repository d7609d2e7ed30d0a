package notes

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/common"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE notes (
  id          TEXT PRIMARY KEY,
  title       TEXT NOT NULL DEFAULT '',
  content     TEXT NOT NULL DEFAULT '',
  created_at  INTEGER NOT NULL DEFAULT 0,
  updated_at  INTEGER NOT NULL DEFAULT 0,
  tags        TEXT NOT NULL DEFAULT '[]',
  is_favorite INTEGER NOT NULL DEFAULT 0,
  color       TEXT NOT NULL DEFAULT '',
  mood        TEXT NOT NULL DEFAULT '',
  sort_order  INTEGER NOT NULL DEFAULT 0,
  note_type   TEXT NOT NULL DEFAULT 'text',
  deleted     INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func TestUpsert_InsertAndUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	n1 := &models.Note{
		ID:        "n1",
		Title:     "groceries",
		Content:   "<p>milk</p>",
		CreatedAt: 100,
		UpdatedAt: 100,
		Tags:      []string{"home", "food"},
		Type:      models.NoteTypeText,
	}
	require.NoError(t, r.Upsert(ctx, n1))

	got, err := r.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, n1, got)

	// update in place
	n1.Title = "groceries (edited)"
	n1.UpdatedAt = 200
	n1.IsFavorite = true
	require.NoError(t, r.Upsert(ctx, n1))

	got, err = r.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "groceries (edited)", got.Title)
	assert.Equal(t, int64(200), got.UpdatedAt)
	assert.True(t, got.IsFavorite)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetAll_FiltersTombstones(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Note{ID: "live", UpdatedAt: 10}))
	require.NoError(t, r.Upsert(ctx, &models.Note{ID: "gone", UpdatedAt: 20, Deleted: true}))

	visible, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "live", visible[0].ID)

	everything, err := r.GetAllIncludingDeleted(ctx)
	require.NoError(t, err)
	assert.Len(t, everything, 2)
}

func TestGetByID_DeletedIsNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Note{ID: "x", UpdatedAt: 10, Deleted: true}))

	_, err := r.GetByID(ctx, "x")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = r.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
