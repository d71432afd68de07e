// Package tuipanel provides a terminal-cell panel compositor that can be
// embedded in other programs.
//
// A Screen owns the terminal's alternate screen and an ordered set of
// panels. Every write to a panel is drawn immediately and remembered, so
// Refresh can repaint the whole picture from memory, bottom panel first.
//
// # Basic Usage
//
//	screen, err := tuipanel.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer screen.Close()
//
//	p, _ := screen.AddPanel(0, 0, 5, 20, true)
//	_ = p.WriteStr(1, 1, tuipanel.DefaultStyle(), "hello")
//
// # Custom Configuration
//
//	screen, err := tuipanel.New(
//		tuipanel.WithOutput(os.Stderr),
//		tuipanel.WithMaxPanels(16),
//		tuipanel.WithStrictBounds(true),
//		tuipanel.WithBorderColors(tuipanel.NewRGB(255, 255, 255), tuipanel.NewRGB(0, 0, 128)),
//	)
package tuipanel

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuipanel/internal/app"
	"github.com/Gaurav-Gosain/tuipanel/internal/cellbuf"
	"github.com/Gaurav-Gosain/tuipanel/internal/config"
	"github.com/Gaurav-Gosain/tuipanel/internal/style"
	"github.com/Gaurav-Gosain/tuipanel/internal/terminal"
)

// Screen is the panel registry and terminal session.
type Screen = app.Screen

// Panel is a rectangular region with stored cells.
type Panel = app.Panel

// Point is an absolute terminal coordinate.
type Point = app.Point

// Cell is one stored character and its style.
type Cell = cellbuf.Cell

// Style is a foreground, background and attribute set.
type Style = style.Style

// RGB is a truecolor value.
type RGB = style.RGB

// Attr is a text attribute bitset.
type Attr = style.Attr

// Renderer receives cursor moves and styled cells.
type Renderer = terminal.Renderer

// Attribute flags.
const (
	AttrReset         = style.AttrReset
	AttrBold          = style.AttrBold
	AttrFaint         = style.AttrFaint
	AttrItalic        = style.AttrItalic
	AttrUnderline     = style.AttrUnderline
	AttrBlink         = style.AttrBlink
	AttrReverse       = style.AttrReverse
	AttrInvisible     = style.AttrInvisible
	AttrStrikethrough = style.AttrStrikethrough
)

// Errors returned by screens and panels.
var (
	ErrScreenFull    = app.ErrScreenFull
	ErrScreenActive  = app.ErrScreenActive
	ErrScreenClosed  = app.ErrScreenClosed
	ErrUnknownPanel  = app.ErrUnknownPanel
	ErrPanelRemoved  = app.ErrPanelRemoved
	ErrInvalidOrigin = app.ErrInvalidOrigin
	ErrOutOfBounds   = cellbuf.ErrOutOfBounds
)

// NewRGB builds a color, clamping each channel to [0,255].
func NewRGB(r, g, b int) RGB { return style.NewRGB(r, g, b) }

// NewStyle builds a style.
func NewStyle(fg, bg RGB, attrs Attr) Style { return style.New(fg, bg, attrs) }

// DefaultStyle is white on black without attributes.
func DefaultStyle() Style { return style.DefaultStyle() }

// Options configures a Screen.
type Options struct {
	// Output is where escape sequences are written. Default is os.Stdout.
	Output io.Writer

	// Renderer replaces the built-in escape writer. Output is ignored when set.
	Renderer Renderer

	// MaxPanels bounds the number of panels. Default is 255.
	MaxPanels int

	// StrictBounds rejects out-of-range writes instead of clamping them.
	StrictBounds bool

	// BorderFg and BorderBg color panel borders. Default is black on white.
	BorderFg RGB
	BorderBg RGB

	// Logger receives diagnostics. Default discards them.
	Logger *log.Logger
}

// Option is a functional option for configuring a Screen.
type Option func(*Options)

// WithOutput sets the terminal writer.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithRenderer sets a custom renderer.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		o.Renderer = r
	}
}

// WithMaxPanels sets the panel limit, clamped to [1, 65535].
func WithMaxPanels(n int) Option {
	return func(o *Options) {
		o.MaxPanels = min(max(n, config.MinMaxPanels), config.MaxMaxPanels)
	}
}

// WithStrictBounds selects strict bounds checking.
func WithStrictBounds(enabled bool) Option {
	return func(o *Options) {
		o.StrictBounds = enabled
	}
}

// WithBorderColors sets the border colors. Black on black selects the
// default black on white.
func WithBorderColors(fg, bg RGB) Option {
	return func(o *Options) {
		o.BorderFg = fg
		o.BorderBg = bg
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithUserConfig applies screen and border settings from a loaded config.
// Options given after it override those values.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		if cfg == nil {
			return
		}
		if cfg.Screen.MaxPanels > 0 {
			o.MaxPanels = cfg.Screen.MaxPanels
		}
		o.StrictBounds = cfg.Screen.BoundsMode == "strict"
		if fg, err := style.ParseRGB(cfg.Border.Fg); err == nil {
			o.BorderFg = fg
		}
		if bg, err := style.ParseRGB(cfg.Border.Bg); err == nil {
			o.BorderBg = bg
		}
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	border := style.BorderStyle()
	return Options{
		Output:    os.Stdout,
		MaxPanels: config.DefaultMaxPanels,
		BorderFg:  border.Fg,
		BorderBg:  border.Bg,
	}
}

// New opens a Screen. Only one Screen may be open at a time; Close it to
// restore the terminal.
func New(opts ...Option) (*Screen, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	r := options.Renderer
	if r == nil {
		r = terminal.NewWriter(options.Output)
	}
	bounds := app.BoundsClamp
	if options.StrictBounds {
		bounds = app.BoundsStrict
	}
	return app.NewScreen(r, app.Options{
		MaxPanels:   options.MaxPanels,
		Bounds:      bounds,
		BorderStyle: style.New(options.BorderFg, options.BorderBg, style.AttrReset),
		Logger:      options.Logger,
	})
}
