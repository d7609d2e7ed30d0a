package notes

import (
	"context"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// Repository is the persistence contract for notes. GetAll and GetByID
// hide soft-deleted records; GetAllIncludingDeleted exists for snapshot
// export and merging, where tombstones must be visible.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Note, error)
	GetAllIncludingDeleted(ctx context.Context) ([]models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	Upsert(ctx context.Context, n *models.Note) error
}
