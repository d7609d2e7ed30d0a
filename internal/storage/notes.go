package storage

import (
	"context"
	"fmt"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// GetAllNotes lists all notes, hiding tombstones.
func (s *Store) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	return s.notes.GetAll(ctx)
}

// GetNote returns one note by id; soft-deleted notes read as not found.
func (s *Store) GetNote(ctx context.Context, id string) (*models.Note, error) {
	return s.notes.GetByID(ctx, id)
}

// PutNote upserts a note. Missing timestamps are stamped with the current
// time; timestamps the caller set are kept, so replayed records keep
// their original recency.
func (s *Store) PutNote(ctx context.Context, n *models.Note) error {
	now := s.now()
	if n.CreatedAt == 0 {
		n.CreatedAt = now
	}
	if n.UpdatedAt == 0 {
		n.UpdatedAt = now
	}

	if err := s.notes.Upsert(ctx, n); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	s.notify()
	return nil
}

// SoftDeleteNote tombstones a note: deleted is set and updatedAt bumped,
// so the deletion wins merges against stale copies elsewhere. The record
// itself stays in the database.
func (s *Store) SoftDeleteNote(ctx context.Context, id string) error {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return err
	}

	n.Deleted = true
	n.UpdatedAt = s.now()

	if err := s.notes.Upsert(ctx, n); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	s.notify()
	return nil
}
