package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/common"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/logging"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	st, err := Open(context.Background(), dsn, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return st
}

func TestOpen_AppliesMigrations(t *testing.T) {
	st := newTestStore(t)

	var name string
	err := st.db.QueryRowContext(context.Background(),
		`SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "goose_db_version", name)
}

func TestPutNote_StampsMissingTimestamps(t *testing.T) {
	st := newTestStore(t)
	st.now = func() int64 { return 1000 }
	ctx := context.Background()

	n := &models.Note{ID: "n1", Title: "first"}
	require.NoError(t, st.PutNote(ctx, n))

	got, err := st.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.CreatedAt)
	assert.Equal(t, int64(1000), got.UpdatedAt)
}

func TestPutNote_KeepsCallerTimestamps(t *testing.T) {
	st := newTestStore(t)
	st.now = func() int64 { return 9999 }
	ctx := context.Background()

	n := &models.Note{ID: "n1", Title: "replayed", CreatedAt: 10, UpdatedAt: 20}
	require.NoError(t, st.PutNote(ctx, n))

	got, err := st.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.CreatedAt)
	assert.Equal(t, int64(20), got.UpdatedAt)
}

func TestSoftDeleteNote_TombstonesAndBumps(t *testing.T) {
	st := newTestStore(t)
	st.now = func() int64 { return 100 }
	ctx := context.Background()

	require.NoError(t, st.PutNote(ctx, &models.Note{ID: "n1", Title: "doomed"}))

	st.now = func() int64 { return 200 }
	require.NoError(t, st.SoftDeleteNote(ctx, "n1"))

	// hidden from reads
	_, err := st.GetNote(ctx, "n1")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	all, err := st.GetAllNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// but still exported, deleted and newer than before
	snap, err := st.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Notes, 1)
	assert.True(t, snap.Notes[0].Deleted)
	assert.Equal(t, int64(200), snap.Notes[0].UpdatedAt)
}

func TestSoftDeleteNote_MissingIsNotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.SoftDeleteNote(context.Background(), "ghost")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestGetTodosByDate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.PutTodo(ctx, &models.Todo{ID: "t1", Text: "today", TargetDate: "2026-09-01"}))
	require.NoError(t, st.PutTodo(ctx, &models.Todo{ID: "t2", Text: "tomorrow", TargetDate: "2026-09-02"}))
	require.NoError(t, st.SoftDeleteTodo(ctx, "t1"))

	today, err := st.GetTodosByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, today, "deleted todo must not be listed")

	tomorrow, err := st.GetTodosByDate(ctx, "2026-09-02")
	require.NoError(t, err)
	require.Len(t, tomorrow, 1)
	assert.Equal(t, "tomorrow", tomorrow[0].Text)
}

func TestUpdateHourlyLogEntry(t *testing.T) {
	st := newTestStore(t)
	st.now = func() int64 { return 500 }
	ctx := context.Background()

	require.NoError(t, st.UpdateHourlyLogEntry(ctx, "2026-09-01", 9, "standup"))
	require.NoError(t, st.UpdateHourlyLogEntry(ctx, "2026-09-01", 14, "review"))

	hl, err := st.GetHourlyLog(ctx, "2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, hl)
	assert.Equal(t, "standup", hl.Logs[9])
	assert.Equal(t, "review", hl.Logs[14])
	assert.Equal(t, int64(500), hl.UpdatedAt)

	// empty text clears the cell
	require.NoError(t, st.UpdateHourlyLogEntry(ctx, "2026-09-01", 9, ""))
	hl, err = st.GetHourlyLog(ctx, "2026-09-01")
	require.NoError(t, err)
	_, ok := hl.Logs[9]
	assert.False(t, ok)
}

func TestUpdateHourlyLogEntry_RejectsBadHour(t *testing.T) {
	st := newTestStore(t)

	assert.Error(t, st.UpdateHourlyLogEntry(context.Background(), "2026-09-01", 24, "x"))
	assert.Error(t, st.UpdateHourlyLogEntry(context.Background(), "2026-09-01", -1, "x"))
}

func TestGetHourlyLog_MissingDayIsNil(t *testing.T) {
	st := newTestStore(t)

	hl, err := st.GetHourlyLog(context.Background(), "1999-01-01")
	require.NoError(t, err)
	assert.Nil(t, hl)
}

func TestOnChange_FiresAndUnsubscribes(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	var fired int
	unsubscribe := st.OnChange(func() { fired++ })

	require.NoError(t, st.PutNote(ctx, &models.Note{ID: "n1", Title: "a"}))
	require.NoError(t, st.PutTodo(ctx, &models.Todo{ID: "t1", Text: "b"}))
	assert.Equal(t, 2, fired)

	unsubscribe()
	require.NoError(t, st.PutNote(ctx, &models.Note{ID: "n2", Title: "c"}))
	assert.Equal(t, 2, fired)
}

func TestExportSnapshot_EmptyStoreHasEmptyArrays(t *testing.T) {
	st := newTestStore(t)

	snap, err := st.ExportSnapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.Notes)
	assert.NotNil(t, snap.Todos)
	assert.NotNil(t, snap.HourlyLogs)
	assert.NotNil(t, snap.Activity)
	assert.True(t, snap.HasUsableData())
}

func TestImportSnapshot_RecencyAndInserts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.PutNote(ctx, &models.Note{ID: "stale", Title: "old title", CreatedAt: 1, UpdatedAt: 100}))
	require.NoError(t, st.PutNote(ctx, &models.Note{ID: "fresh", Title: "mine", CreatedAt: 1, UpdatedAt: 500}))

	summary, err := st.ImportSnapshot(ctx, &models.Snapshot{
		Notes: []models.Note{
			{ID: "stale", Title: "new title", CreatedAt: 1, UpdatedAt: 200},
			{ID: "fresh", Title: "theirs", CreatedAt: 1, UpdatedAt: 400},
			{ID: "unseen", Title: "brand new", CreatedAt: 1, UpdatedAt: 50},
		},
		Todos: []models.Todo{},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.NotesApplied, "overwrite of stale + insert of unseen")
	assert.Equal(t, 3, summary.NotesTotal)
	assert.True(t, summary.Applied())

	stale, err := st.GetNote(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, "new title", stale.Title)

	fresh, err := st.GetNote(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "mine", fresh.Title, "newer local record must survive")

	_, err = st.GetNote(ctx, "unseen")
	assert.NoError(t, err)
}

func TestImportSnapshot_TombstonePropagates(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.PutNote(ctx, &models.Note{ID: "n1", Title: "alive", CreatedAt: 1, UpdatedAt: 100}))

	_, err := st.ImportSnapshot(ctx, &models.Snapshot{
		Notes: []models.Note{{ID: "n1", Title: "alive", CreatedAt: 1, UpdatedAt: 200, Deleted: true}},
		Todos: []models.Todo{},
	})
	require.NoError(t, err)

	_, err = st.GetNote(ctx, "n1")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	snap, err := st.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Notes, 1)
	assert.True(t, snap.Notes[0].Deleted)
}

func TestImportSnapshot_SingleNotification(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	var fired int
	st.OnChange(func() { fired++ })

	_, err := st.ImportSnapshot(ctx, &models.Snapshot{
		Notes: []models.Note{{ID: "a", Title: "x", UpdatedAt: 1}},
		Todos: []models.Todo{{ID: "b", Text: "y", UpdatedAt: 1}},
		HourlyLogs: []models.HourlyLog{
			{Date: "2026-09-01", Logs: map[int]string{8: "gym"}, UpdatedAt: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestImportSnapshot_Idempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	snap := &models.Snapshot{
		Notes: []models.Note{{ID: "a", Title: "x", UpdatedAt: 10}},
		Todos: []models.Todo{{ID: "b", Text: "y", UpdatedAt: 10}},
	}

	first, err := st.ImportSnapshot(ctx, snap)
	require.NoError(t, err)
	assert.True(t, first.Applied())

	second, err := st.ImportSnapshot(ctx, snap)
	require.NoError(t, err)
	assert.False(t, second.Applied(), "re-importing the same snapshot must be a no-op")
}
