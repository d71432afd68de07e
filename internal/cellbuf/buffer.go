// Package cellbuf provides the fixed-size cell grid backing each panel.
package cellbuf

import (
	"errors"
	"fmt"

	"github.com/Gaurav-Gosain/tuipanel/internal/style"
)

// Cell is one character position: a single byte plus its style.
type Cell struct {
	Char  byte
	Style style.Style
}

// DefaultCell is a space, white on black, no attributes.
func DefaultCell() Cell {
	return Cell{Char: ' ', Style: style.DefaultStyle()}
}

var (
	// ErrEmptyBuffer is returned when a buffer would have no rows or columns.
	ErrEmptyBuffer = errors.New("buffer dimensions must be positive")

	// ErrOutOfBounds matches every *BoundsError.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// BoundsError reports an access outside the grid.
type BoundsError struct {
	Y, X        int
	Lines, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d buffer", e.Y, e.X, e.Lines, e.Cols)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Buffer is a lines x cols grid stored row-major in one slice. Its
// dimensions never change; use Resize to get a differently sized copy.
type Buffer struct {
	lines int
	cols  int
	cells []Cell
}

// New allocates a buffer with every cell set to DefaultCell.
func New(lines, cols int) (*Buffer, error) {
	if lines <= 0 || cols <= 0 {
		return nil, fmt.Errorf("new %dx%d buffer: %w", lines, cols, ErrEmptyBuffer)
	}
	b := &Buffer{
		lines: lines,
		cols:  cols,
		cells: make([]Cell, lines*cols),
	}
	b.Fill(DefaultCell())
	return b, nil
}

// Lines returns the number of rows.
func (b *Buffer) Lines() int { return b.lines }

// Cols returns the number of columns.
func (b *Buffer) Cols() int { return b.cols }

// InBounds reports whether (y,x) addresses a cell.
func (b *Buffer) InBounds(y, x int) bool {
	return y >= 0 && y < b.lines && x >= 0 && x < b.cols
}

// Clamp saturates (y,x) to the nearest valid cell.
func (b *Buffer) Clamp(y, x int) (int, int) {
	return min(max(y, 0), b.lines-1), min(max(x, 0), b.cols-1)
}

func (b *Buffer) check(y, x int) error {
	if !b.InBounds(y, x) {
		return &BoundsError{Y: y, X: x, Lines: b.lines, Cols: b.cols}
	}
	return nil
}

// Get returns the cell at (y,x).
func (b *Buffer) Get(y, x int) (Cell, error) {
	if err := b.check(y, x); err != nil {
		return Cell{}, err
	}
	return b.cells[y*b.cols+x], nil
}

// Set stores c at (y,x).
func (b *Buffer) Set(y, x int, c Cell) error {
	if err := b.check(y, x); err != nil {
		return err
	}
	b.cells[y*b.cols+x] = c
	return nil
}

// Row returns row y for read-only iteration. It panics if y is out of range.
func (b *Buffer) Row(y int) []Cell {
	start := y * b.cols
	return b.cells[start : start+b.cols : start+b.cols]
}

// Fill sets every cell to c.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clone returns an independent copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		lines: b.lines,
		cols:  b.cols,
		cells: append([]Cell(nil), b.cells...),
	}
}

// Resize returns a new lines x cols buffer holding old's content where the
// two extents overlap; every other cell is DefaultCell. old is not modified.
func Resize(old *Buffer, lines, cols int) (*Buffer, error) {
	nb, err := New(lines, cols)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nb, nil
	}
	h := min(old.lines, lines)
	w := min(old.cols, cols)
	for y := range h {
		copy(nb.cells[y*cols:y*cols+w], old.cells[y*old.cols:y*old.cols+w])
	}
	return nb, nil
}
