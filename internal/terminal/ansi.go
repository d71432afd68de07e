package terminal

import "github.com/charmbracelet/x/ansi"

// Terminal mode sequences emitted around a screen session.
const (
	AltScreenEnter = ansi.SetModeAltScreenSaveCursor   // ESC[?1049h
	AltScreenLeave = ansi.ResetModeAltScreenSaveCursor // ESC[?1049l

	// AutowrapOff and AutowrapOn use the "=" private marker. This is the
	// form written by the screens this package targets, not DECAWM (?7).
	AutowrapOff = "\x1b[=7l"
	AutowrapOn  = "\x1b[=7h"
)

// cursor position fragments: ESC[<row>;<col>H
const (
	cupPrefix = "\x1b["
	cupSep    = ';'
	cupFinal  = 'H'
)
