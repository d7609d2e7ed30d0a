package storage

import (
	"context"
	"fmt"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/dbx"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/merge"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/activity"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/hourlylogs"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/notes"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/todos"
)

// ImportSummary reports what a snapshot import changed: per collection,
// how many records the incoming side contributed (inserts plus
// overwrites), and the merged totals used for user-facing messages.
type ImportSummary struct {
	NotesApplied      int
	TodosApplied      int
	HourlyLogsApplied int
	ActivityApplied   int

	NotesTotal int
	TodosTotal int
}

// Applied reports whether the import changed anything.
func (s ImportSummary) Applied() bool {
	return s.NotesApplied+s.TodosApplied+s.HourlyLogsApplied+s.ActivityApplied > 0
}

// ExportSnapshot assembles the full backup document. Soft-deleted records
// are included: without the tombstones a backup would resurrect deleted
// records on every other device.
func (s *Store) ExportSnapshot(ctx context.Context) (*models.Snapshot, error) {
	ns, err := s.notes.GetAllIncludingDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export notes: %w", err)
	}
	tds, err := s.todos.GetAllIncludingDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export todos: %w", err)
	}
	hls, err := s.hourly.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export hourly logs: %w", err)
	}
	as, err := s.activity.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export activity: %w", err)
	}

	// absent collections must serialize as [] rather than null, the
	// snapshot consumer treats missing arrays as an unusable document
	if ns == nil {
		ns = []models.Note{}
	}
	if tds == nil {
		tds = []models.Todo{}
	}
	if hls == nil {
		hls = []models.HourlyLog{}
	}
	if as == nil {
		as = []models.ActivitySession{}
	}

	return &models.Snapshot{
		Notes:      ns,
		Todos:      tds,
		HourlyLogs: hls,
		Activity:   as,
		Timestamp:  s.now(),
	}, nil
}

// ImportSnapshot merges an incoming snapshot into the local store using
// last-write-wins per record. Each collection is merged and persisted in
// its own transaction; subscribers get a single change notification at
// the end regardless of how many collections changed.
func (s *Store) ImportSnapshot(ctx context.Context, snap *models.Snapshot) (*ImportSummary, error) {
	summary := &ImportSummary{}

	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := notes.NewSQLiteRepository(tx)
		local, err := repo.GetAllIncludingDeleted(ctx)
		if err != nil {
			return err
		}
		merged, applied := merge.Notes(local, snap.Notes)
		summary.NotesApplied = applied
		summary.NotesTotal = len(merged)
		if applied == 0 {
			return nil
		}
		for i := range merged {
			if err := repo.Upsert(ctx, &merged[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to merge notes: %w", err)
	}

	err = s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := todos.NewSQLiteRepository(tx)
		local, err := repo.GetAllIncludingDeleted(ctx)
		if err != nil {
			return err
		}
		merged, applied := merge.Todos(local, snap.Todos)
		summary.TodosApplied = applied
		summary.TodosTotal = len(merged)
		if applied == 0 {
			return nil
		}
		for i := range merged {
			if err := repo.Upsert(ctx, &merged[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to merge todos: %w", err)
	}

	err = s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := hourlylogs.NewSQLiteRepository(tx)
		local, err := repo.GetAll(ctx)
		if err != nil {
			return err
		}
		merged, applied := merge.HourlyLogs(local, snap.HourlyLogs)
		summary.HourlyLogsApplied = applied
		if applied == 0 {
			return nil
		}
		for i := range merged {
			if err := repo.Upsert(ctx, &merged[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to merge hourly logs: %w", err)
	}

	err = s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := activity.NewSQLiteRepository(tx)
		local, err := repo.GetAll(ctx)
		if err != nil {
			return err
		}
		merged, applied := merge.Activity(local, snap.Activity)
		summary.ActivityApplied = applied
		if applied == 0 {
			return nil
		}
		for i := range merged {
			if err := repo.Upsert(ctx, &merged[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to merge activity: %w", err)
	}

	s.logger.Debug(ctx, "snapshot merged",
		"notes", summary.NotesApplied, "todos", summary.TodosApplied,
		"hourlyLogs", summary.HourlyLogsApplied, "activity", summary.ActivityApplied)

	s.notify()
	return summary, nil
}
