// Package storage is the local store facade: typed CRUD over the
// per-collection repositories, soft-delete tombstoning, snapshot
// export/import and a change feed the sync layer subscribes to.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/dbx"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/logging"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/migrations"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/activity"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/hourlylogs"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/notes"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/settings"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/todos"

	_ "modernc.org/sqlite"
)

// Store owns the SQLite database and exposes the collection operations.
// All reads filter soft-deleted records; snapshot export does not, so
// tombstones travel with backups.
type Store struct {
	db     *sql.DB
	logger logging.Logger

	notes    notes.Repository
	todos    todos.Repository
	hourly   hourlylogs.Repository
	activity activity.Repository
	settings settings.Repository

	// now is the updatedAt clock, swapped in tests
	now func() int64

	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at dsn, applies
// migrations and wires the repositories.
func Open(ctx context.Context, dsn string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{
		db:       db,
		logger:   logger,
		notes:    notes.NewSQLiteRepository(db),
		todos:    todos.NewSQLiteRepository(db),
		hourly:   hourlylogs.NewSQLiteRepository(db),
		activity: activity.NewSQLiteRepository(db),
		settings: settings.NewSQLiteRepository(db),
		now:      func() int64 { return time.Now().UnixMilli() },
		subs:     make(map[int]func()),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Settings returns the key/value repository for persisted sync settings.
func (s *Store) Settings() settings.Repository {
	return s.settings
}

// OnChange registers a callback fired after every local mutation and once
// after a snapshot import. The returned function removes the
// subscription.
func (s *Store) OnChange(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// callbacks run outside the lock so they may re-subscribe
	for _, fn := range fns {
		fn()
	}
}

// withTx runs fn in a transaction over the database.
func (s *Store) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, s.db, nil, fn)
}
