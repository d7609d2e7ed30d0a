package storage

import (
	"context"
	"fmt"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// GetActivitySessionsByDate lists the sessions recorded for one day.
func (s *Store) GetActivitySessionsByDate(ctx context.Context, date string) ([]models.ActivitySession, error) {
	return s.activity.GetByDate(ctx, date)
}

// PutActivitySession upserts a tracked session, stamping updatedAt when
// the tracker did not set one.
func (s *Store) PutActivitySession(ctx context.Context, as *models.ActivitySession) error {
	if as.UpdatedAt == 0 {
		as.UpdatedAt = s.now()
	}

	if err := s.activity.Upsert(ctx, as); err != nil {
		return fmt.Errorf("failed to save activity session: %w", err)
	}
	s.notify()
	return nil
}
