package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/google/uuid"
)

func (a *App) ListNotes(ctx context.Context) error {
	notes, err := a.store.GetAllNotes(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(notes) == 0 {
		printlnFn("No notes yet")
		return nil
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].Order < notes[j].Order })

	for _, n := range notes {
		marker := " "
		if n.IsFavorite {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s", marker, n.ID, n.Title))
	}
	return nil
}

func (a *App) AddNote(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "- Enter title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, err := GetMultiline(a.reader, "- Enter note text", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	mood, err := GetSimpleText(a.reader, "- Mood (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	n := &models.Note{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		Mood:    mood,
		Type:    models.NoteTypeText,
	}
	if err := a.store.PutNote(ctx, n); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Saved note", n.ID)
	return nil
}

func (a *App) ToggleFavorite(ctx context.Context, id string) error {
	n, err := a.store.GetNote(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	n.IsFavorite = !n.IsFavorite
	n.UpdatedAt = 0 // restamped on save
	if err := a.store.PutNote(ctx, n); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if n.IsFavorite {
		printlnFn("Marked favorite")
	} else {
		printlnFn("Removed favorite")
	}
	return nil
}

func (a *App) DeleteNote(ctx context.Context, id string) error {
	if err := a.store.SoftDeleteNote(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn("Deleted note", id)
	return nil
}
