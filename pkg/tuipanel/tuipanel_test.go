package tuipanel_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/tuipanel/internal/config"
	"github.com/Gaurav-Gosain/tuipanel/internal/testutil"
	"github.com/Gaurav-Gosain/tuipanel/pkg/tuipanel"
)

func TestNewWithOptions(t *testing.T) {
	term := testutil.NewFakeTerminal(40, 10)
	fg, bg := tuipanel.NewRGB(255, 255, 255), tuipanel.NewRGB(0, 0, 128)
	screen, err := tuipanel.New(
		tuipanel.WithOutput(term),
		tuipanel.WithMaxPanels(2),
		tuipanel.WithStrictBounds(true),
		tuipanel.WithBorderColors(fg, bg),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = screen.Close() }()

	p, err := screen.AddPanel(1, 1, 3, 5, true)
	if err != nil {
		t.Fatalf("AddPanel failed: %v", err)
	}
	if c, _ := p.Cell(0, 0); c.Style.Fg != fg || c.Style.Bg != bg {
		t.Errorf("border style = %+v", c.Style)
	}
	if err := p.WriteCell(9, 9, tuipanel.DefaultStyle(), 'x'); !errors.Is(err, tuipanel.ErrOutOfBounds) {
		t.Errorf("strict write error = %v", err)
	}
	if _, err := screen.AddPanel(0, 0, 1, 1, false); err != nil {
		t.Fatalf("second AddPanel failed: %v", err)
	}
	if _, err := screen.AddPanel(0, 0, 1, 1, false); !errors.Is(err, tuipanel.ErrScreenFull) {
		t.Errorf("third AddPanel error = %v", err)
	}
	if !strings.HasPrefix(term.Output(), "\x1b[?1049h") {
		t.Error("output does not start in the alternate screen")
	}
}

func TestWithUserConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Screen.MaxPanels = 1
	cfg.Border.Fg = "#102030"

	term := testutil.NewFakeTerminal(20, 5)
	screen, err := tuipanel.New(tuipanel.WithOutput(term), tuipanel.WithUserConfig(cfg))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = screen.Close() }()

	if screen.MaxPanels() != 1 {
		t.Errorf("MaxPanels = %d", screen.MaxPanels())
	}
	p, _ := screen.AddPanel(0, 0, 2, 2, true)
	if c, _ := p.Cell(0, 0); c.Style.Fg != tuipanel.NewRGB(0x10, 0x20, 0x30) {
		t.Errorf("border fg = %v", c.Style.Fg)
	}
}

func TestWithMaxPanelsClamps(t *testing.T) {
	var o tuipanel.Options
	tuipanel.WithMaxPanels(0)(&o)
	if o.MaxPanels != 1 {
		t.Errorf("MaxPanels = %d, want 1", o.MaxPanels)
	}
	tuipanel.WithMaxPanels(1 << 20)(&o)
	if o.MaxPanels != 65535 {
		t.Errorf("MaxPanels = %d, want 65535", o.MaxPanels)
	}
}
