package app

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/tuipanel/internal/cellbuf"
	"github.com/Gaurav-Gosain/tuipanel/internal/config"
	"github.com/Gaurav-Gosain/tuipanel/internal/style"
	"github.com/Gaurav-Gosain/tuipanel/internal/terminal"
)

var (
	// ErrScreenFull is returned by AddPanel when the registry holds
	// MaxPanels panels.
	ErrScreenFull = errors.New("screen is full")

	// ErrUnknownPanel is returned when a panel is not registered with the
	// screen it is passed to.
	ErrUnknownPanel = errors.New("panel not registered with screen")

	// ErrScreenActive is returned by NewScreen while another screen is open.
	ErrScreenActive = errors.New("another screen is already active")

	// ErrScreenClosed is returned by operations after Close.
	ErrScreenClosed = errors.New("screen is closed")

	// ErrDuplicateName is returned when a named panel already exists.
	ErrDuplicateName = errors.New("panel name already in use")

	errNilRenderer = errors.New("nil renderer")
)

// active guards the process-wide alternate-screen session.
var active atomic.Bool

// Options configures a Screen.
type Options struct {
	// MaxPanels bounds the registry. Zero or negative means
	// config.DefaultMaxPanels.
	MaxPanels int

	// Bounds selects clamping or strict writes.
	Bounds BoundsMode

	// BorderStyle is used for borders drawn at creation and after resize.
	// The zero value means style.BorderStyle().
	BorderStyle style.Style

	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger
}

// Screen is the ordered registry of panels. Index 0 is painted first
// (bottom); the last panel is painted last (top). A Screen owns the
// alternate-screen session for its lifetime and is safe for concurrent use.
type Screen struct {
	mu sync.Mutex

	renderer    terminal.Renderer
	logger      *log.Logger
	maxPanels   int
	bounds      BoundsMode
	borderStyle style.Style

	panels []*Panel
	closed bool
}

// NewScreen enters the alternate screen with autowrap disabled and returns
// an empty screen. Only one screen may be open at a time.
func NewScreen(r terminal.Renderer, opts Options) (*Screen, error) {
	if r == nil {
		return nil, errNilRenderer
	}
	if opts.MaxPanels <= 0 {
		opts.MaxPanels = config.DefaultMaxPanels
	}
	if opts.BorderStyle == (style.Style{}) {
		opts.BorderStyle = style.BorderStyle()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if !active.CompareAndSwap(false, true) {
		return nil, ErrScreenActive
	}
	if err := r.EnterAltScreen(); err != nil {
		active.Store(false)
		return nil, fmt.Errorf("init screen: %w", err)
	}

	s := &Screen{
		renderer:    r,
		logger:      opts.Logger,
		maxPanels:   opts.MaxPanels,
		bounds:      opts.Bounds,
		borderStyle: opts.BorderStyle,
		panels:      make([]*Panel, 0, min(opts.MaxPanels, config.DefaultMaxPanels)),
	}
	s.logger.Info("screen initialized", "max_panels", s.maxPanels, "bounds", s.bounds)
	return s, nil
}

func createID() string {
	return uuid.New().String()
}

// MaxPanels returns the registry bound.
func (s *Screen) MaxPanels() int { return s.maxPanels }

// Bounds returns the screen's bounds mode.
func (s *Screen) Bounds() BoundsMode { return s.bounds }

// AddPanel creates an unnamed panel. See AddNamedPanel.
func (s *Screen) AddPanel(y, x, lines, cols int, border bool) (*Panel, error) {
	return s.AddNamedPanel("", y, x, lines, cols, border)
}

// AddNamedPanel creates a lines x cols panel with its origin at (y, x),
// paints every cell white on black, optionally draws a border, parks the
// cursor at the first content cell and registers the panel on top of the
// z-order. On failure nothing is registered.
func (s *Screen) AddNamedPanel(name string, y, x, lines, cols int, border bool) (*Panel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrScreenClosed
	}
	if len(s.panels) >= s.maxPanels {
		s.logger.Warn("cannot add panel", "reason", "screen full", "max_panels", s.maxPanels)
		return nil, fmt.Errorf("add panel: %w (max %d)", ErrScreenFull, s.maxPanels)
	}
	if y < 0 || x < 0 {
		return nil, fmt.Errorf("add panel at (%d,%d): %w", y, x, ErrInvalidOrigin)
	}
	if name != "" && s.lookup(name) != nil {
		return nil, fmt.Errorf("add panel %q: %w", name, ErrDuplicateName)
	}
	buf, err := cellbuf.New(lines, cols)
	if err != nil {
		return nil, fmt.Errorf("add panel: %w", err)
	}

	p := &Panel{
		id:     createID(),
		name:   name,
		start:  Point{Y: y, X: x},
		end:    Point{Y: y + lines, X: x + cols},
		buf:    buf,
		screen: s,
	}

	def := style.DefaultStyle()
	for py := range lines {
		for px := range cols {
			if err := p.put(py, px, def, ' '); err != nil {
				return nil, fmt.Errorf("add panel: %w", err)
			}
		}
	}

	cursor := p.start
	if border {
		if err := p.drawBorder(s.borderStyle); err != nil {
			return nil, fmt.Errorf("add panel: %w", err)
		}
		cursor = cursor.Add(1, 1)
	}
	if err := s.renderer.MoveTo(cursor.Y, cursor.X); err != nil {
		return nil, fmt.Errorf("add panel: %w", err)
	}

	s.panels = append(s.panels, p)
	s.logger.Info("panel added", "panel", p.shortID(), "name", name,
		"origin", p.start, "size", fmt.Sprintf("%dx%d", lines, cols), "border", border,
		"count", len(s.panels))
	return p, nil
}

// Refresh re-enters the alternate screen and replays every panel from its
// stored cells, bottom to top.
func (s *Screen) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrScreenClosed
	}
	if err := s.renderer.EnterAltScreen(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	for _, p := range s.panels {
		if err := p.replay(); err != nil {
			return fmt.Errorf("refresh panel %s: %w", p.shortID(), err)
		}
	}
	s.logger.Debug("screen refreshed", "panels", len(s.panels))
	return nil
}

// RemovePanel releases p's buffer and drops it from the registry, keeping
// the relative order of the remaining panels. The terminal is not redrawn.
func (s *Screen) RemovePanel(p *Panel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.indexOf("remove", p)
	if err != nil {
		return err
	}
	p.release()
	s.panels = slices.Delete(s.panels, i, i+1)
	s.logger.Info("panel removed", "panel", p.shortID(), "index", i, "remaining", len(s.panels))
	return nil
}

// ToTop moves p to the end of the registry so it is painted last.
func (s *Screen) ToTop(p *Panel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.indexOf("to_top", p)
	if err != nil {
		return err
	}
	s.panels = append(slices.Delete(s.panels, i, i+1), p)
	return nil
}

// ToBottom moves p to the start of the registry so it is painted first.
func (s *Screen) ToBottom(p *Panel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.indexOf("to_bottom", p)
	if err != nil {
		return err
	}
	s.panels = slices.Insert(slices.Delete(s.panels, i, i+1), 0, p)
	return nil
}

// Panels returns the registered panels in z-order, bottom first.
func (s *Screen) Panels() []*Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.panels)
}

// Len returns the number of registered panels.
func (s *Screen) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.panels)
}

// PanelByName finds a registered panel by name.
func (s *Screen) PanelByName(name string) (*Panel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.lookup(name)
	return p, p != nil
}

// Close releases every panel, leaves the alternate screen and restores
// autowrap. Calling Close again does nothing.
func (s *Screen) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	for _, p := range s.panels {
		p.release()
	}
	n := len(s.panels)
	s.panels = nil
	s.closed = true
	active.Store(false)
	s.logger.Info("screen closed", "released", n)
	if err := s.renderer.LeaveAltScreen(); err != nil {
		return fmt.Errorf("close screen: %w", err)
	}
	return nil
}

func (s *Screen) lookup(name string) *Panel {
	if name == "" {
		return nil
	}
	for _, p := range s.panels {
		if p.name == name {
			return p
		}
	}
	return nil
}

// indexOf locates p for a registry operation. Failures are logged and leave
// the registry untouched.
func (s *Screen) indexOf(op string, p *Panel) (int, error) {
	if s.closed {
		return -1, ErrScreenClosed
	}
	if p == nil {
		s.logger.Warn("panel not registered", "op", op, "panel", "<nil>")
		return -1, fmt.Errorf("%s: %w", op, ErrUnknownPanel)
	}
	if p.removed {
		s.logger.Warn("panel already removed", "op", op, "panel", p.shortID())
		return -1, fmt.Errorf("%s: %w", op, ErrPanelRemoved)
	}
	i := slices.Index(s.panels, p)
	if i < 0 {
		s.logger.Warn("panel not registered", "op", op, "panel", p.shortID())
		return -1, fmt.Errorf("%s: %w", op, ErrUnknownPanel)
	}
	return i, nil
}
