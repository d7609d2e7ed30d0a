package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/common"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// GetHourlyLog returns the log for one calendar day, or nil when the day
// has no entries yet.
func (s *Store) GetHourlyLog(ctx context.Context, date string) (*models.HourlyLog, error) {
	hl, err := s.hourly.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return hl, nil
}

// SaveHourlyLog replaces the whole day's hour map.
func (s *Store) SaveHourlyLog(ctx context.Context, date string, logs map[int]string) error {
	hl := &models.HourlyLog{
		Date:      date,
		Logs:      logs,
		UpdatedAt: s.now(),
	}
	if err := s.hourly.Upsert(ctx, hl); err != nil {
		return fmt.Errorf("failed to save hourly log: %w", err)
	}
	s.notify()
	return nil
}

// UpdateHourlyLogEntry writes a single hour cell, creating the day record
// when needed. An empty text clears the cell. The whole day's updatedAt
// is bumped, matching the merge unit.
func (s *Store) UpdateHourlyLogEntry(ctx context.Context, date string, hour int, text string) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour %d out of range", hour)
	}

	hl, err := s.GetHourlyLog(ctx, date)
	if err != nil {
		return err
	}
	if hl == nil {
		hl = &models.HourlyLog{Date: date, Logs: map[int]string{}}
	}
	if hl.Logs == nil {
		hl.Logs = map[int]string{}
	}

	if text == "" {
		delete(hl.Logs, hour)
	} else {
		hl.Logs[hour] = text
	}
	hl.UpdatedAt = s.now()

	if err := s.hourly.Upsert(ctx, hl); err != nil {
		return fmt.Errorf("failed to update hourly log: %w", err)
	}
	s.notify()
	return nil
}
