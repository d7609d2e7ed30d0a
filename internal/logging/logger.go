// Package logging defines the minimal structured-logging interface used by
// the storage and sync layers, with a log/slog implementation.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs, e.g.:
//
//	log.Info(ctx, "sync complete", "notes", n, "todos", m)
type Logger interface {
	// Debug logs chatty diagnostics (trigger scheduling, debounce resets).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal operation milestones.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions; swallowed background
	// sync failures land here.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key-value pairs.
	With(args ...any) Logger
}
