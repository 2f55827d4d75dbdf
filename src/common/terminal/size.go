// Package terminal provides terminal capability detection for the CLI
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size represents terminal dimensions
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal size, falling back to 80x24
func GetSize() Size {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols == 0 {
		cols = 80
	}
	if err != nil || rows == 0 {
		rows = 24
	}
	return Size{Cols: cols, Rows: rows}
}

// Narrow reports whether the terminal is too narrow for aligned columns
func (s Size) Narrow() bool {
	return s.Cols < 60
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive returns true if both stdin and stdout are terminals,
// which is what full-screen prompts need.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && IsTerminal()
}
