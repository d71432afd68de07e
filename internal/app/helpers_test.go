package app

import (
	"testing"

	"github.com/Gaurav-Gosain/tuipanel/internal/terminal"
	"github.com/Gaurav-Gosain/tuipanel/internal/testutil"
)

const (
	termWidth  = 80
	termHeight = 24
)

func newTestScreen(t *testing.T, opts Options) (*Screen, *testutil.FakeTerminal) {
	t.Helper()
	term := testutil.NewFakeTerminal(termWidth, termHeight)
	s, err := NewScreen(terminal.NewWriter(term), opts)
	if err != nil {
		t.Fatalf("NewScreen failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, term
}

func mustAddPanel(t *testing.T, s *Screen, y, x, lines, cols int, border bool) *Panel {
	t.Helper()
	p, err := s.AddPanel(y, x, lines, cols, border)
	if err != nil {
		t.Fatalf("AddPanel(%d,%d,%d,%d,%v) failed: %v", y, x, lines, cols, border, err)
	}
	return p
}

func checkGeometry(t *testing.T, p *Panel) {
	t.Helper()
	lines, cols := p.Size()
	start, end := p.Start(), p.End()
	if end.Y-start.Y != lines || end.X-start.X != cols {
		t.Errorf("end-start = (%d,%d), want (%d,%d)", end.Y-start.Y, end.X-start.X, lines, cols)
	}
}
