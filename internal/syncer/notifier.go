package syncer

// Level classifies a notification for presentation.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier receives user-facing sync messages. The orchestrator emits
// them only for user-initiated operations; background failures go to the
// log instead.
type Notifier interface {
	Notify(level Level, message string)
}

// NopNotifier discards notifications, for headless runs and tests.
type NopNotifier struct{}

func (NopNotifier) Notify(Level, string) {}
