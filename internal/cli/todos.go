package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/google/uuid"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

func (a *App) ListTodos(ctx context.Context, date string) error {
	var (
		todos []models.Todo
		err   error
	)
	if date == "" {
		todos, err = a.store.GetAllTodos(ctx)
	} else {
		if date == "today" {
			date = today()
		}
		todos, err = a.store.GetTodosByDate(ctx, date)
	}
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(todos) == 0 {
		printlnFn("No todos")
		return nil
	}

	for _, td := range todos {
		box := "[ ]"
		if td.Completed {
			box = "[x]"
		}
		printlnFn(fmt.Sprintf("%s %s  %s  (%s)", box, td.ID, td.Text, td.TargetDate))
	}
	return nil
}

func (a *App) AddTodo(ctx context.Context) error {
	text, err := GetSimpleText(a.reader, "- Enter task", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	date, err := GetSimpleText(a.reader, "- Target date (YYYY-MM-DD, empty = today)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if date == "" {
		date = today()
	}

	td := &models.Todo{
		ID:         uuid.NewString(),
		Text:       text,
		TargetDate: date,
	}
	if err := a.store.PutTodo(ctx, td); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Saved todo", td.ID)
	return nil
}

func (a *App) CompleteTodo(ctx context.Context, id string) error {
	td, err := a.store.GetTodo(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	td.Completed = !td.Completed
	td.UpdatedAt = 0
	if err := a.store.PutTodo(ctx, td); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if td.Completed {
		printlnFn("Done:", td.Text)
	} else {
		printlnFn("Reopened:", td.Text)
	}
	return nil
}

func (a *App) DeleteTodo(ctx context.Context, id string) error {
	if err := a.store.SoftDeleteTodo(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn("Deleted todo", id)
	return nil
}
