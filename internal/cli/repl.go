package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	ListNotes(ctx context.Context) error
	AddNote(ctx context.Context) error
	ToggleFavorite(ctx context.Context, id string) error
	DeleteNote(ctx context.Context, id string) error

	ListTodos(ctx context.Context, date string) error
	AddTodo(ctx context.Context) error
	CompleteTodo(ctx context.Context, id string) error
	DeleteTodo(ctx context.Context, id string) error

	ShowLog(ctx context.Context, args []string) error
	ListActivity(ctx context.Context, date string) error
	TrackActivity(ctx context.Context) error

	Sync(ctx context.Context) error
	Upload(ctx context.Context) error
	Download(ctx context.Context) error
	Refresh(ctx context.Context) error
	Resume(ctx context.Context) error
	Authorize(ctx context.Context) error
	SetAutoSync(ctx context.Context, on bool) error
	SetRealTime(ctx context.Context, on bool) error
	Status(ctx context.Context) error
}

const helpText = `Available commands:
  notes | addnote | favnote <id> | delnote <id>
  todos [date] | addtodo | done <id> | deltodo <id>
  log <date|today> [hour] [text]
  activity [date] | track
  sync | upload | download | refresh | resume
  auth | autosync on|off | realtime on|off | status
  exit | quit`

// runREPL reads lines, parses the first token as the command and
// dispatches. Handlers report their own errors, so the loop ignores
// returned values and stays focused on I/O. Exits on EOF or exit/quit.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("tn> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "notes":
			_ = a.ListNotes(ctx)
		case "addnote":
			_ = a.AddNote(ctx)
		case "favnote":
			if len(args) == 0 {
				printlnFn("Usage: favnote <id>")
				continue
			}
			_ = a.ToggleFavorite(ctx, args[0])
		case "delnote":
			if len(args) == 0 {
				printlnFn("Usage: delnote <id>")
				continue
			}
			_ = a.DeleteNote(ctx, args[0])

		case "todos":
			date := ""
			if len(args) > 0 {
				date = args[0]
			}
			_ = a.ListTodos(ctx, date)
		case "addtodo":
			_ = a.AddTodo(ctx)
		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.CompleteTodo(ctx, args[0])
		case "deltodo":
			if len(args) == 0 {
				printlnFn("Usage: deltodo <id>")
				continue
			}
			_ = a.DeleteTodo(ctx, args[0])

		case "log":
			if len(args) == 0 {
				printlnFn("Usage: log <date|today> [hour] [text]")
				continue
			}
			_ = a.ShowLog(ctx, args)

		case "activity":
			date := ""
			if len(args) > 0 {
				date = args[0]
			}
			_ = a.ListActivity(ctx, date)
		case "track":
			_ = a.TrackActivity(ctx)

		case "sync":
			_ = a.Sync(ctx)
		case "upload":
			_ = a.Upload(ctx)
		case "download":
			_ = a.Download(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		case "resume":
			_ = a.Resume(ctx)

		case "auth":
			_ = a.Authorize(ctx)
		case "autosync", "realtime":
			if len(args) == 0 || (args[0] != "on" && args[0] != "off") {
				printlnFn(fmt.Sprintf("Usage: %s on|off", cmd))
				continue
			}
			on := args[0] == "on"
			if cmd == "autosync" {
				_ = a.SetAutoSync(ctx, on)
			} else {
				_ = a.SetRealTime(ctx, on)
			}
		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
