package cellbuf

import (
	"errors"
	"testing"

	"github.com/Gaurav-Gosain/tuipanel/internal/style"
)

func TestNewFillsDefault(t *testing.T) {
	b, err := New(3, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b.Lines() != 3 || b.Cols() != 4 {
		t.Fatalf("dims = %dx%d, want 3x4", b.Lines(), b.Cols())
	}
	for y := range 3 {
		for x := range 4 {
			c, err := b.Get(y, x)
			if err != nil {
				t.Fatalf("Get(%d,%d) failed: %v", y, x, err)
			}
			if c != DefaultCell() {
				t.Errorf("cell (%d,%d) = %+v, want default", y, x, c)
			}
		}
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrEmptyBuffer) {
			t.Errorf("New(%d,%d) error = %v, want ErrEmptyBuffer", dims[0], dims[1], err)
		}
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	b, _ := New(2, 2)
	want := Cell{Char: 'Q', Style: style.New(style.NewRGB(1, 2, 3), style.White, style.AttrItalic)}
	if err := b.Set(1, 0, want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := b.Get(1, 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestOutOfBounds(t *testing.T) {
	b, _ := New(2, 3)
	tests := []struct{ y, x int }{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}}
	for _, tt := range tests {
		_, err := b.Get(tt.y, tt.x)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d,%d) error = %v, want ErrOutOfBounds", tt.y, tt.x, err)
		}
		var be *BoundsError
		if !errors.As(err, &be) || be.Y != tt.y || be.X != tt.x {
			t.Errorf("Get(%d,%d) error = %#v, want *BoundsError with coordinates", tt.y, tt.x, err)
		}
		if err := b.Set(tt.y, tt.x, DefaultCell()); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d) error = %v, want ErrOutOfBounds", tt.y, tt.x, err)
		}
	}
}

func TestClamp(t *testing.T) {
	b, _ := New(5, 10)
	tests := []struct {
		y, x, wantY, wantX int
	}{
		{0, 0, 0, 0},
		{4, 9, 4, 9},
		{2, 15, 2, 9},
		{7, 3, 4, 3},
		{-2, -8, 0, 0},
	}
	for _, tt := range tests {
		y, x := b.Clamp(tt.y, tt.x)
		if y != tt.wantY || x != tt.wantX {
			t.Errorf("Clamp(%d,%d) = (%d,%d), want (%d,%d)", tt.y, tt.x, y, x, tt.wantY, tt.wantX)
		}
	}
}

func TestRowIsolated(t *testing.T) {
	b, _ := New(2, 3)
	_ = b.Set(1, 2, Cell{Char: 'z', Style: style.DefaultStyle()})
	row := b.Row(1)
	if len(row) != 3 || row[2].Char != 'z' {
		t.Fatalf("Row(1) = %+v", row)
	}
	// Appending to a row must not spill into the next row's storage.
	if cap(row) != 3 {
		t.Errorf("cap(Row) = %d, want 3", cap(row))
	}
}

func TestCloneIndependent(t *testing.T) {
	b, _ := New(1, 1)
	c := b.Clone()
	_ = c.Set(0, 0, Cell{Char: 'x'})
	if got, _ := b.Get(0, 0); got.Char != ' ' {
		t.Errorf("original changed after clone write: %q", got.Char)
	}
}

func fillPattern(b *Buffer) {
	for y := range b.Lines() {
		for x := range b.Cols() {
			_ = b.Set(y, x, Cell{
				Char:  byte('a' + (y*b.Cols()+x)%26),
				Style: style.New(style.NewRGB(y, x, 7), style.Black, style.AttrBold),
			})
		}
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name         string
		lines, cols  int
		nLines, nCol int
	}{
		{"grow both", 3, 4, 5, 7},
		{"shrink both", 5, 7, 2, 3},
		{"grow rows shrink cols", 3, 6, 6, 2},
		{"same size", 4, 4, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old, _ := New(tt.lines, tt.cols)
			fillPattern(old)
			before := old.Clone()

			nb, err := Resize(old, tt.nLines, tt.nCol)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if nb.Lines() != tt.nLines || nb.Cols() != tt.nCol {
				t.Fatalf("dims = %dx%d", nb.Lines(), nb.Cols())
			}
			for y := range tt.nLines {
				for x := range tt.nCol {
					got, _ := nb.Get(y, x)
					var want Cell
					if y < tt.lines && x < tt.cols {
						want, _ = before.Get(y, x)
					} else {
						want = DefaultCell()
					}
					if got != want {
						t.Errorf("cell (%d,%d) = %+v, want %+v", y, x, got, want)
					}
				}
			}
			// old untouched
			for y := range tt.lines {
				for x := range tt.cols {
					a, _ := old.Get(y, x)
					b, _ := before.Get(y, x)
					if a != b {
						t.Fatalf("old buffer mutated at (%d,%d)", y, x)
					}
				}
			}
		})
	}
}

func TestResizeRejectsEmpty(t *testing.T) {
	old, _ := New(2, 2)
	if _, err := Resize(old, 0, 2); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("Resize error = %v, want ErrEmptyBuffer", err)
	}
}
