package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuipanel/internal/style"
)

// Cell is one decoded terminal cell.
type Cell struct {
	Char  byte
	Style style.Style
}

// Point is a 0-indexed cursor position.
type Point struct {
	Y, X int
}

// Snapshot is the terminal state reconstructed from an output stream.
type Snapshot struct {
	Width, Height int
	Cells         []Cell // row-major

	Cursor    Point
	AltScreen bool
	Autowrap  bool

	// Moves lists every cursor position sequence target in order.
	Moves []Point
	// Printed counts rendered characters.
	Printed int
}

// Cell returns the cell at (y, x), or the zero Cell when out of range.
func (s *Snapshot) Cell(y, x int) Cell {
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return Cell{}
	}
	return s.Cells[y*s.Width+x]
}

// Line returns row y's characters with unwritten cells as spaces.
func (s *Snapshot) Line(y int) string {
	var b strings.Builder
	for x := range s.Width {
		ch := s.Cell(y, x).Char
		if ch == 0 {
			ch = ' '
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// Decode replays data onto a width x height grid.
func Decode(data []byte, width, height int) *Snapshot {
	s := &Snapshot{
		Width:    width,
		Height:   height,
		Cells:    make([]Cell, width*height),
		Autowrap: true,
	}
	pen := style.DefaultStyle()
	p := ansi.NewParser()

	var state byte
	for len(data) > 0 {
		seq, w, n, newState := ansi.DecodeSequence(data, state, p)
		state = newState
		if n <= 0 {
			break
		}
		data = data[n:]

		switch {
		case w > 0:
			for i := 0; i < len(seq); i++ {
				s.print(seq[i], pen)
			}
		case ansi.HasCsiPrefix(seq):
			s.csi(p, &pen)
		}
	}
	return s
}

func (s *Snapshot) print(ch byte, pen style.Style) {
	s.Printed++
	if s.Width == 0 || s.Height == 0 {
		return
	}
	s.Cells[s.Cursor.Y*s.Width+s.Cursor.X] = Cell{Char: ch, Style: pen}
	if s.Cursor.X < s.Width-1 {
		s.Cursor.X++
		return
	}
	if s.Autowrap && s.Cursor.Y < s.Height-1 {
		s.Cursor.X = 0
		s.Cursor.Y++
	}
}

func (s *Snapshot) csi(p *ansi.Parser, pen *style.Style) {
	cmd := ansi.Cmd(p.Command())
	switch cmd.Final() {
	case 'H':
		row, _ := p.Param(0, 1)
		col, _ := p.Param(1, 1)
		s.Cursor = Point{
			Y: min(max(row-1, 0), max(s.Height-1, 0)),
			X: min(max(col-1, 0), max(s.Width-1, 0)),
		}
		s.Moves = append(s.Moves, Point{Y: row - 1, X: col - 1})
	case 'h', 'l':
		set := cmd.Final() == 'h'
		mode, _ := p.Param(0, 0)
		switch {
		case cmd.Prefix() == '?' && mode == 1049:
			s.AltScreen = set
		case cmd.Prefix() == '=' && mode == 7:
			s.Autowrap = set
		}
	case 'm':
		applySGR(p.Params(), pen)
	}
}

var sgrAttrs = map[int]style.Attr{
	1: style.AttrBold,
	2: style.AttrFaint,
	3: style.AttrItalic,
	4: style.AttrUnderline,
	5: style.AttrBlink,
	7: style.AttrReverse,
	8: style.AttrInvisible,
	9: style.AttrStrikethrough,
}

func applySGR(params ansi.Params, pen *style.Style) {
	if len(params) == 0 {
		*pen = style.DefaultStyle()
		return
	}
	for i := 0; i < len(params); i++ {
		code := params[i].Param(0)
		switch {
		case code == 0:
			*pen = style.DefaultStyle()
		case code == 38 || code == 48:
			if i+4 >= len(params) || params[i+1].Param(0) != 2 {
				return
			}
			c := style.NewRGB(params[i+2].Param(0), params[i+3].Param(0), params[i+4].Param(0))
			if code == 38 {
				pen.Fg = c
			} else {
				pen.Bg = c
			}
			i += 4
		default:
			if a, ok := sgrAttrs[code]; ok {
				pen.Attrs |= a
			}
		}
	}
}
