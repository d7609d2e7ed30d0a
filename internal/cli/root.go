package cli

import (
	"bufio"
	"context"
	"fmt"
)

// Root runs the interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("TruNotes CLI (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(a.reader))
}
