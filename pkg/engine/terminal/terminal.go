// Package terminal reports the size of the controlling terminal, falling
// back to sane defaults when stdout is not a terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Width returns the current terminal width, or DefaultWidth when it cannot
// be determined.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Height returns the current terminal height, or DefaultHeight when it
// cannot be determined.
func Height() int {
	_, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || h <= 0 {
		return DefaultHeight
	}
	return h
}
