package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	args  []string
}

func (f *fakeExec) record(name string, args ...string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args...)
}

func (f *fakeExec) ListNotes(ctx context.Context) error { f.record("notes"); return nil }
func (f *fakeExec) AddNote(ctx context.Context) error   { f.record("addnote"); return nil }
func (f *fakeExec) ToggleFavorite(ctx context.Context, id string) error {
	f.record("favnote", id)
	return nil
}
func (f *fakeExec) DeleteNote(ctx context.Context, id string) error {
	f.record("delnote", id)
	return nil
}
func (f *fakeExec) ListTodos(ctx context.Context, date string) error {
	f.record("todos", date)
	return nil
}
func (f *fakeExec) AddTodo(ctx context.Context) error { f.record("addtodo"); return nil }
func (f *fakeExec) CompleteTodo(ctx context.Context, id string) error {
	f.record("done", id)
	return nil
}
func (f *fakeExec) DeleteTodo(ctx context.Context, id string) error {
	f.record("deltodo", id)
	return nil
}
func (f *fakeExec) ShowLog(ctx context.Context, args []string) error {
	f.record("log", args...)
	return nil
}
func (f *fakeExec) ListActivity(ctx context.Context, date string) error {
	f.record("activity", date)
	return nil
}
func (f *fakeExec) TrackActivity(ctx context.Context) error { f.record("track"); return nil }
func (f *fakeExec) Sync(ctx context.Context) error          { f.record("sync"); return nil }
func (f *fakeExec) Upload(ctx context.Context) error        { f.record("upload"); return nil }
func (f *fakeExec) Download(ctx context.Context) error      { f.record("download"); return nil }
func (f *fakeExec) Refresh(ctx context.Context) error       { f.record("refresh"); return nil }
func (f *fakeExec) Resume(ctx context.Context) error        { f.record("resume"); return nil }
func (f *fakeExec) Authorize(ctx context.Context) error     { f.record("auth"); return nil }
func (f *fakeExec) SetAutoSync(ctx context.Context, on bool) error {
	f.record("autosync", onOff(on))
	return nil
}
func (f *fakeExec) SetRealTime(ctx context.Context, on bool) error {
	f.record("realtime", onOff(on))
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error { f.record("status"); return nil }

func runWithInput(t *testing.T, lines ...string) *fakeExec {
	t.Helper()

	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, sc)
	return exec
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := runWithInput(t,
		"notes",
		"addnote",
		"favnote n1",
		"delnote n2",
		"todos 2026-09-01",
		"addtodo",
		"done t1",
		"deltodo t2",
		"log today 9 standup",
		"activity",
		"track",
		"sync",
		"upload",
		"download",
		"refresh",
		"resume",
		"auth",
		"autosync on",
		"realtime off",
		"status",
		"exit",
	)

	assert.Equal(t, []string{
		"notes", "addnote", "favnote", "delnote",
		"todos", "addtodo", "done", "deltodo",
		"log", "activity", "track",
		"sync", "upload", "download", "refresh", "resume",
		"auth", "autosync", "realtime", "status",
	}, exec.calls)

	assert.Contains(t, exec.args, "n1")
	assert.Contains(t, exec.args, "2026-09-01")
	assert.Contains(t, exec.args, "standup")
	assert.Contains(t, exec.args, "on")
	assert.Contains(t, exec.args, "off")
}

func TestRunREPL_ArgumentValidation(t *testing.T) {
	exec := runWithInput(t,
		"favnote",      // missing id
		"done",         // missing id
		"log",          // missing date
		"autosync",     // missing on/off
		"realtime huh", // bad value
		"",             // blank line
		"quit",
	)

	assert.Empty(t, exec.calls, "malformed commands must not dispatch")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	exec := runWithInput(t, "frobnicate", "exit")
	assert.Empty(t, exec.calls)
}
