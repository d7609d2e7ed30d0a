package hourlylogs

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
CREATE TABLE hourly_logs (
  date       TEXT PRIMARY KEY,
  logs       TEXT NOT NULL DEFAULT '{}',
  updated_at INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func TestUpsert_ReplacesWholeDay(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	day := &models.HourlyLog{
		Date:      "2026-09-01",
		Logs:      map[int]string{9: "standup", 14: "review"},
		UpdatedAt: 100,
	}
	require.NoError(t, r.Upsert(ctx, day))

	got, err := r.GetByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, day, got)

	// a later write replaces the whole hour map, hour 9 disappears
	require.NoError(t, r.Upsert(ctx, &models.HourlyLog{
		Date:      "2026-09-01",
		Logs:      map[int]string{14: "review (longer)"},
		UpdatedAt: 200,
	}))

	got, err = r.GetByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, map[int]string{14: "review (longer)"}, got.Logs)
	assert.Equal(t, int64(200), got.UpdatedAt)
}

func TestGetAll_And_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.HourlyLog{Date: "2026-09-01", Logs: map[int]string{1: "a"}, UpdatedAt: 1}))
	require.NoError(t, r.Upsert(ctx, &models.HourlyLog{Date: "2026-09-02", Logs: map[int]string{2: "b"}, UpdatedAt: 2}))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = r.GetByDate(ctx, "1999-01-01")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
