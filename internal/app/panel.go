package app

import (
	"errors"
	"fmt"

	"github.com/Gaurav-Gosain/tuipanel/internal/cellbuf"
	"github.com/Gaurav-Gosain/tuipanel/internal/style"
)

var (
	// ErrPanelRemoved is returned by every operation on a panel after it has
	// been removed from its screen or the screen was closed.
	ErrPanelRemoved = errors.New("panel has been removed")

	// ErrInvalidOrigin is returned for a negative panel origin.
	ErrInvalidOrigin = errors.New("panel origin must not be negative")
)

// Panel is a rectangular region of the terminal with its own stored cells.
// Every write is rendered immediately and recorded in the panel's buffer so
// the screen can repaint it later without reading the terminal.
//
// Panels are created by a Screen and share its lock.
type Panel struct {
	id   string
	name string

	start Point
	end   Point // exclusive; end - start == buffer size

	border bool
	buf    *cellbuf.Buffer

	screen  *Screen
	removed bool
}

// ID returns the panel's unique identifier.
func (p *Panel) ID() string { return p.id }

// Name returns the name given at creation, possibly empty.
func (p *Panel) Name() string { return p.name }

func (p *Panel) shortID() string {
	if len(p.id) > 8 {
		return p.id[:8]
	}
	return p.id
}

// Start returns the absolute origin.
func (p *Panel) Start() Point {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	return p.start
}

// End returns the exclusive absolute bound.
func (p *Panel) End() Point {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	return p.end
}

// Size returns the panel's line and column counts. A removed panel reports 0x0.
func (p *Panel) Size() (lines, cols int) {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	if p.buf == nil {
		return 0, 0
	}
	return p.buf.Lines(), p.buf.Cols()
}

// HasBorder reports whether a border is currently drawn.
func (p *Panel) HasBorder() bool {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	return p.border
}

// Removed reports whether the panel has been released.
func (p *Panel) Removed() bool {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	return p.removed
}

// Cell returns the stored cell at panel-local (y, x). Reads are never
// clamped.
func (p *Panel) Cell(y, x int) (cellbuf.Cell, error) {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	if p.removed {
		return cellbuf.Cell{}, ErrPanelRemoved
	}
	return p.buf.Get(y, x)
}

// WriteCell renders ch in style s at panel-local (y, x) and records it.
func (p *Panel) WriteCell(y, x int, s style.Style, ch byte) error {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	if p.removed {
		return ErrPanelRemoved
	}
	return p.writeCell(y, x, s, ch)
}

// WriteStr writes text left to right starting at (y, x). Writing stops at
// the panel's right edge; there is no wrapping. The start position follows
// the screen's bounds mode.
func (p *Panel) WriteStr(y, x int, s style.Style, text string) error {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	if p.removed {
		return ErrPanelRemoved
	}
	if text == "" {
		return nil
	}
	y, x, err := p.resolve(y, x)
	if err != nil {
		return err
	}
	for i := 0; i < len(text) && x+i < p.buf.Cols(); i++ {
		if err := p.put(y, x+i, s, text[i]); err != nil {
			return err
		}
	}
	return nil
}

// DrawBorder paints a one-cell frame of spaces in fg on bg around the
// panel's edges. The frame overwrites stored content.
func (p *Panel) DrawBorder(fg, bg style.RGB) error {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	if p.removed {
		return ErrPanelRemoved
	}
	return p.drawBorder(style.New(fg, bg, style.AttrReset))
}

// RemoveBorder repaints the frame white on black and clears the border
// flag. Content that was under the border is not restored.
func (p *Panel) RemoveBorder() error {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	if p.removed {
		return ErrPanelRemoved
	}
	return p.removeBorder()
}

// MoveTo changes the panel's origin, keeping its size and content. Nothing
// is drawn until the next refresh.
func (p *Panel) MoveTo(y, x int) error {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	if p.removed {
		return ErrPanelRemoved
	}
	if y < 0 || x < 0 {
		return fmt.Errorf("move to (%d,%d): %w", y, x, ErrInvalidOrigin)
	}
	from := p.start
	p.start = Point{Y: y, X: x}
	p.end = p.start.Add(p.buf.Lines(), p.buf.Cols())
	p.screen.logger.Debug("panel moved", "panel", p.shortID(), "from", from, "to", p.start)
	return nil
}

// Resize gives the panel new dimensions at the same origin. Content in the
// overlap of the old and new extents is kept, new cells are default, and
// the whole panel is repainted. A border is taken down first and redrawn
// with the screen's border style afterwards.
func (p *Panel) Resize(lines, cols int) error {
	p.screen.mu.Lock()
	defer p.screen.mu.Unlock()
	if p.removed {
		return ErrPanelRemoved
	}
	if lines <= 0 || cols <= 0 {
		return fmt.Errorf("resize to %dx%d: %w", lines, cols, cellbuf.ErrEmptyBuffer)
	}

	hadBorder := p.border
	if hadBorder {
		if err := p.removeBorder(); err != nil {
			return err
		}
	}

	nb, err := cellbuf.Resize(p.buf, lines, cols)
	if err != nil {
		return fmt.Errorf("resize to %dx%d: %w", lines, cols, err)
	}
	oldLines, oldCols := p.buf.Lines(), p.buf.Cols()
	p.buf = nb
	p.end = p.start.Add(lines, cols)

	if err := p.paint(); err != nil {
		return err
	}
	if hadBorder {
		if err := p.drawBorder(p.screen.borderStyle); err != nil {
			return err
		}
	}
	p.screen.logger.Debug("panel resized", "panel", p.shortID(),
		"from", fmt.Sprintf("%dx%d", oldLines, oldCols), "to", fmt.Sprintf("%dx%d", lines, cols))
	return nil
}

// resolve applies the bounds mode to a panel-local coordinate.
func (p *Panel) resolve(y, x int) (int, int, error) {
	if p.buf.InBounds(y, x) {
		return y, x, nil
	}
	if p.screen.bounds == BoundsStrict {
		_, err := p.buf.Get(y, x)
		return 0, 0, err
	}
	cy, cx := p.buf.Clamp(y, x)
	p.screen.logger.Debug("write clamped", "panel", p.shortID(),
		"from", Point{Y: y, X: x}, "to", Point{Y: cy, X: cx})
	return cy, cx, nil
}

func (p *Panel) writeCell(y, x int, s style.Style, ch byte) error {
	y, x, err := p.resolve(y, x)
	if err != nil {
		return err
	}
	return p.put(y, x, s, ch)
}

// put records and renders an in-bounds cell. The buffer is updated even if
// rendering fails so a refresh can repair the terminal.
func (p *Panel) put(y, x int, s style.Style, ch byte) error {
	if err := p.buf.Set(y, x, cellbuf.Cell{Char: ch, Style: s}); err != nil {
		return err
	}
	r := p.screen.renderer
	if err := r.MoveTo(p.start.Y+y, p.start.X+x); err != nil {
		return err
	}
	return r.PutCell(s, ch)
}

func (p *Panel) drawBorder(s style.Style) error {
	lines, cols := p.buf.Lines(), p.buf.Cols()
	for x := range cols {
		if err := p.put(0, x, s, ' '); err != nil {
			return err
		}
	}
	for y := range lines {
		if err := p.put(y, 0, s, ' '); err != nil {
			return err
		}
	}
	for x := range cols {
		if err := p.put(lines-1, x, s, ' '); err != nil {
			return err
		}
	}
	for y := range lines {
		if err := p.put(y, cols-1, s, ' '); err != nil {
			return err
		}
	}
	p.border = true
	return nil
}

func (p *Panel) removeBorder() error {
	if err := p.drawBorder(style.DefaultStyle()); err != nil {
		return err
	}
	p.border = false
	return nil
}

// paint re-renders every stored cell, one cursor move per cell.
func (p *Panel) paint() error {
	for y := range p.buf.Lines() {
		for x, c := range p.buf.Row(y) {
			if err := p.put(y, x, c.Style, c.Char); err != nil {
				return err
			}
		}
	}
	return nil
}

// replay renders the stored image with one cursor move per row.
func (p *Panel) replay() error {
	r := p.screen.renderer
	for y := range p.buf.Lines() {
		if err := r.MoveTo(p.start.Y+y, p.start.X); err != nil {
			return err
		}
		for _, c := range p.buf.Row(y) {
			if err := r.PutCell(c.Style, c.Char); err != nil {
				return err
			}
		}
	}
	return nil
}

// release drops the buffer and marks the panel unusable.
func (p *Panel) release() {
	p.buf = nil
	p.removed = true
}
