package todos

import (
	"context"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// Repository is the persistence contract for todos. Reads hide
// soft-deleted records except GetAllIncludingDeleted, which serves
// snapshot export and merging.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Todo, error)
	GetAllIncludingDeleted(ctx context.Context) ([]models.Todo, error)
	GetByTargetDate(ctx context.Context, date string) ([]models.Todo, error)
	GetByID(ctx context.Context, id string) (*models.Todo, error)
	Upsert(ctx context.Context, td *models.Todo) error
}
