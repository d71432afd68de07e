package app

import (
	"fmt"

	"github.com/Gaurav-Gosain/tuipanel/internal/style"
	"github.com/Gaurav-Gosain/tuipanel/internal/tape"
)

// ColorResolver turns a color name or hex string into a color.
type ColorResolver interface {
	ResolveColor(s string) (style.RGB, error)
}

// ScreenExecutor implements tape.Executor on a Screen. Scripts address
// panels by the name given when they were created.
type ScreenExecutor struct {
	screen *Screen
	colors ColorResolver
}

var _ tape.Executor = (*ScreenExecutor)(nil)

// NewScreenExecutor binds scripts to s. colors may be nil, in which case
// only hex colors are accepted.
func NewScreenExecutor(s *Screen, colors ColorResolver) *ScreenExecutor {
	return &ScreenExecutor{screen: s, colors: colors}
}

func (e *ScreenExecutor) panel(name string) (*Panel, error) {
	p, ok := e.screen.PanelByName(name)
	if !ok {
		return nil, fmt.Errorf("no panel named %q: %w", name, ErrUnknownPanel)
	}
	return p, nil
}

func (e *ScreenExecutor) color(s string, def style.RGB) (style.RGB, error) {
	if s == "" {
		return def, nil
	}
	if e.colors == nil {
		return style.ParseRGB(s)
	}
	return e.colors.ResolveColor(s)
}

// resolveStyle applies opts on top of base.
func (e *ScreenExecutor) resolveStyle(opts tape.StyleOptions, base style.Style) (style.Style, error) {
	fg, err := e.color(opts.Fg, base.Fg)
	if err != nil {
		return style.Style{}, fmt.Errorf("fg: %w", err)
	}
	bg, err := e.color(opts.Bg, base.Bg)
	if err != nil {
		return style.Style{}, fmt.Errorf("bg: %w", err)
	}
	attrs := base.Attrs
	if opts.Attrs != "" {
		if attrs, err = style.ParseAttrs(opts.Attrs); err != nil {
			return style.Style{}, fmt.Errorf("attrs: %w", err)
		}
	}
	return style.New(fg, bg, attrs), nil
}

// CreatePanel adds a named panel.
func (e *ScreenExecutor) CreatePanel(name string, y, x, lines, cols int, border bool) error {
	_, err := e.screen.AddNamedPanel(name, y, x, lines, cols, border)
	return err
}

// WriteText writes text at (y, x), white on black unless overridden.
func (e *ScreenExecutor) WriteText(name string, y, x int, text string, opts tape.StyleOptions) error {
	p, err := e.panel(name)
	if err != nil {
		return err
	}
	st, err := e.resolveStyle(opts, style.DefaultStyle())
	if err != nil {
		return err
	}
	return p.WriteStr(y, x, st, text)
}

// DrawBorder draws a border in the screen's border colors unless
// overridden.
func (e *ScreenExecutor) DrawBorder(name string, opts tape.StyleOptions) error {
	p, err := e.panel(name)
	if err != nil {
		return err
	}
	st, err := e.resolveStyle(opts, e.screen.borderStyle)
	if err != nil {
		return err
	}
	return p.DrawBorder(st.Fg, st.Bg)
}

// RemoveBorder removes a panel's border.
func (e *ScreenExecutor) RemoveBorder(name string) error {
	p, err := e.panel(name)
	if err != nil {
		return err
	}
	return p.RemoveBorder()
}

// MovePanel moves a panel's origin.
func (e *ScreenExecutor) MovePanel(name string, y, x int) error {
	p, err := e.panel(name)
	if err != nil {
		return err
	}
	return p.MoveTo(y, x)
}

// ResizePanel resizes a panel.
func (e *ScreenExecutor) ResizePanel(name string, lines, cols int) error {
	p, err := e.panel(name)
	if err != nil {
		return err
	}
	return p.Resize(lines, cols)
}

// RaisePanel moves a panel to the top of the z-order.
func (e *ScreenExecutor) RaisePanel(name string) error {
	p, err := e.panel(name)
	if err != nil {
		return err
	}
	return e.screen.ToTop(p)
}

// LowerPanel moves a panel to the bottom of the z-order.
func (e *ScreenExecutor) LowerPanel(name string) error {
	p, err := e.panel(name)
	if err != nil {
		return err
	}
	return e.screen.ToBottom(p)
}

// RemovePanel removes a panel from the screen.
func (e *ScreenExecutor) RemovePanel(name string) error {
	p, err := e.panel(name)
	if err != nil {
		return err
	}
	return e.screen.RemovePanel(p)
}

// Refresh repaints the screen.
func (e *ScreenExecutor) Refresh() error {
	return e.screen.Refresh()
}
