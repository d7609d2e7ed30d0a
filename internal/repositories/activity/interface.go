package activity

import (
	"context"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// Repository is the persistence contract for activity sessions. Sessions
// have no soft-delete: trackers only ever append or refresh them.
type Repository interface {
	GetAll(ctx context.Context) ([]models.ActivitySession, error)
	GetByDate(ctx context.Context, date string) ([]models.ActivitySession, error)
	Upsert(ctx context.Context, s *models.ActivitySession) error
}
