package hourlylogs

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

// SQLiteRepository implements Repository over a DBTX. The hour map is
// stored as one JSON column: merges replace whole days, so per-hour rows
// would buy nothing.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert inserts or replaces the log for one day.
func (r *SQLiteRepository) Upsert(ctx context.Context, hl *models.HourlyLog) error {
	logs, err := json.Marshal(hl.Logs)
	if err != nil {
		return fmt.Errorf("failed to encode hour map: %w", err)
	}
	query := `INSERT INTO hourly_logs (date, logs, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET logs = excluded.logs,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, hl.Date, string(logs), hl.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert hourly log: %w", err)
	}
	return nil
}

// GetAll lists the logs of every recorded day.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.HourlyLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, logs, updated_at FROM hourly_logs`)
	if err != nil {
		return nil, fmt.Errorf("failed to select hourly logs: %w", err)
	}
	defer rows.Close()

	var result []models.HourlyLog
	for rows.Next() {
		hl, err := scanLog(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *hl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByDate returns the log for one day, or common.ErrNotFound.
func (r *SQLiteRepository) GetByDate(ctx context.Context, date string) (*models.HourlyLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT date, logs, updated_at FROM hourly_logs WHERE date = ?`, date)
	hl, err := scanLog(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return hl, nil
}

func scanLog(scan func(dest ...any) error) (*models.HourlyLog, error) {
	var hl models.HourlyLog
	var logs string
	if err := scan(&hl.Date, &logs, &hl.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(logs), &hl.Logs); err != nil {
		return nil, fmt.Errorf("failed to decode hour map: %w", err)
	}
	return &hl, nil
}
