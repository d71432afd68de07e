package app

import (
	"context"
	"errors"
	"testing"

	"github.com/Gaurav-Gosain/tuipanel/internal/config"
	"github.com/Gaurav-Gosain/tuipanel/internal/style"
	"github.com/Gaurav-Gosain/tuipanel/internal/tape"
)

func runScript(t *testing.T, s *Screen, colors ColorResolver, src string) error {
	t.Helper()
	cmds, err := tape.ParseScript(src)
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	return tape.NewCommandExecutor(NewScreenExecutor(s, colors)).Run(context.Background(), cmds)
}

func TestScreenExecutorScript(t *testing.T) {
	s, term := newTestScreen(t, Options{})
	cfg := config.DefaultConfig()
	cfg.Palette["accent"] = "#ff8800"

	err := runScript(t, s, cfg, `
Panel back 0 0 4 12
Panel front 1 4 3 6 border
Write back 0 0 "background" fg=accent attrs=bold
Write front 1 1 "ok" fg=#00ff00 bg=blue
Bottom front
Refresh
`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	back, ok := s.PanelByName("back")
	if !ok {
		t.Fatal("panel back missing")
	}
	c, _ := back.Cell(0, 0)
	want := style.New(style.NewRGB(0xff, 0x88, 0), style.Black, style.AttrBold)
	if c.Char != 'b' || c.Style != want {
		t.Errorf("back(0,0) = %+v, want 'b' %+v", c, want)
	}

	panels := s.Panels()
	if panels[0].Name() != "front" || panels[1].Name() != "back" {
		t.Errorf("z-order = %s,%s", panels[0].Name(), panels[1].Name())
	}

	// back was repainted last, so it covers front's top-left corner.
	snap := term.Snapshot()
	if got := snap.Line(1)[4]; got != ' ' {
		t.Errorf("terminal (1,4) = %q", got)
	}
	if got := snap.Cell(1, 4).Style; got != style.DefaultStyle() {
		t.Errorf("terminal (1,4) style = %+v, want back's default", got)
	}
}

func TestScreenExecutorBorderAndGeometry(t *testing.T) {
	s, _ := newTestScreen(t, Options{})
	err := runScript(t, s, nil, `
Panel p 0 0 3 3
Border p fg=#112233
Move p 4 5
Resize p 5 6
NoBorder p
`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	p, _ := s.PanelByName("p")
	if p.HasBorder() {
		t.Error("border still set")
	}
	if p.Start() != (Point{Y: 4, X: 5}) {
		t.Errorf("Start = %v", p.Start())
	}
	if l, c := p.Size(); l != 5 || c != 6 {
		t.Errorf("Size = %dx%d", l, c)
	}
}

func TestScreenExecutorErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown panel", "Top ghost", ErrUnknownPanel},
		{"duplicate", "Panel a 0 0 1 1\nPanel a 0 0 1 1", ErrDuplicateName},
		{"removed", "Panel a 0 0 1 1\nRemove a\nTop a", ErrUnknownPanel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScreen(t, Options{})
			if err := runScript(t, s, nil, tt.src); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	s, _ := newTestScreen(t, Options{})
	if err := runScript(t, s, nil, "Panel a 0 0 1 1\nWrite a 0 0 \"x\" fg=accent"); err == nil {
		t.Error("expected error for palette name without resolver")
	}
}
