package storage

import (
	"context"
	"fmt"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// GetAllTodos lists all todos, hiding tombstones.
func (s *Store) GetAllTodos(ctx context.Context) ([]models.Todo, error) {
	return s.todos.GetAll(ctx)
}

// GetTodosByDate lists the non-deleted todos bucketed under targetDate.
func (s *Store) GetTodosByDate(ctx context.Context, targetDate string) ([]models.Todo, error) {
	return s.todos.GetByTargetDate(ctx, targetDate)
}

// GetTodo returns one todo by id; soft-deleted todos read as not found.
func (s *Store) GetTodo(ctx context.Context, id string) (*models.Todo, error) {
	return s.todos.GetByID(ctx, id)
}

// PutTodo upserts a todo, stamping missing timestamps.
func (s *Store) PutTodo(ctx context.Context, td *models.Todo) error {
	now := s.now()
	if td.CreatedAt == 0 {
		td.CreatedAt = now
	}
	if td.UpdatedAt == 0 {
		td.UpdatedAt = now
	}

	if err := s.todos.Upsert(ctx, td); err != nil {
		return fmt.Errorf("failed to save todo: %w", err)
	}
	s.notify()
	return nil
}

// SoftDeleteTodo tombstones a todo.
func (s *Store) SoftDeleteTodo(ctx context.Context, id string) error {
	td, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return err
	}

	td.Deleted = true
	td.UpdatedAt = s.now()

	if err := s.todos.Upsert(ctx, td); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	s.notify()
	return nil
}
