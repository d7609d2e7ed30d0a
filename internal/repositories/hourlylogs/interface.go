package hourlylogs

import (
	"context"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// Repository is the persistence contract for hourly logs. Identity is the
// calendar date string: at most one record per day, no delete operation.
type Repository interface {
	GetAll(ctx context.Context) ([]models.HourlyLog, error)
	GetByDate(ctx context.Context, date string) (*models.HourlyLog, error)
	Upsert(ctx context.Context, hl *models.HourlyLog) error
}
