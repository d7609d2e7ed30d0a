package cli

import (
	"fmt"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/syncer"
)

// notifyFn is a test seam for toast output.
var notifyFn = fmt.Println

// consoleNotifier renders sync toasts as single console lines.
type consoleNotifier struct{}

func (consoleNotifier) Notify(level syncer.Level, message string) {
	_, _ = notifyFn(fmt.Sprintf("[%s] %s", level, message))
}
