package activity

import (
	"context"
	"fmt"

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

const sessionColumns = `id, app_name, device_type, start_time, duration, date, updated_at`

// Upsert inserts or replaces a session by id.
func (r *SQLiteRepository) Upsert(ctx context.Context, s *models.ActivitySession) error {
	query := `INSERT INTO activity_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET app_name = excluded.app_name,
			device_type = excluded.device_type,
			start_time = excluded.start_time,
			duration = excluded.duration,
			date = excluded.date,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.AppName, string(s.DeviceType), s.StartTime, s.Duration, s.Date, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert activity session: %w", err)
	}
	return nil
}

// GetAll lists every recorded session.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.ActivitySession, error) {
	return r.list(ctx, `SELECT `+sessionColumns+` FROM activity_sessions`)
}

// GetByDate lists the sessions bucketed under one calendar day.
func (r *SQLiteRepository) GetByDate(ctx context.Context, date string) ([]models.ActivitySession, error) {
	return r.list(ctx, `SELECT `+sessionColumns+` FROM activity_sessions WHERE date = ?`, date)
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.ActivitySession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select activity sessions: %w", err)
	}
	defer rows.Close()

	var result []models.ActivitySession
	for rows.Next() {
		var s models.ActivitySession
		var device string
		if err := rows.Scan(&s.ID, &s.AppName, &device, &s.StartTime, &s.Duration, &s.Date, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.DeviceType = models.DeviceType(device)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
