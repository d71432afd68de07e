package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when the size cannot be queried.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal on fd, or the 80x24
// fallback when fd is not a terminal.
func Size(fd int) (width, height int) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
