// Package terminal is the raw escape-sequence sink panels draw through.
// It formats cursor moves, styled cells and screen-mode switches and writes
// each one straight to the underlying device.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Gaurav-Gosain/tuipanel/internal/style"
)

// Renderer receives absolute, 0-indexed terminal coordinates and styled
// characters. Implementations must not buffer across calls.
type Renderer interface {
	// MoveTo positions the cursor at (row, col).
	MoveTo(row, col int) error
	// PutCell renders ch in style s at the current cursor position.
	PutCell(s style.Style, ch byte) error
	// EnterAltScreen switches to the alternate screen and disables autowrap.
	EnterAltScreen() error
	// LeaveAltScreen restores the main screen and autowrap.
	LeaveAltScreen() error
}

// Writer is a Renderer over an io.Writer. Every operation is a single Write
// call. A Writer is not safe for concurrent use.
type Writer struct {
	out io.Writer
	buf []byte
}

var _ Renderer = (*Writer)(nil)

// NewWriter returns a Writer that writes to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, buf: make([]byte, 0, 64)}
}

// Stdout returns a Writer bound to os.Stdout.
func Stdout() *Writer {
	return NewWriter(os.Stdout)
}

func (w *Writer) flush(op string) error {
	_, err := w.out.Write(w.buf)
	w.buf = w.buf[:0]
	if err != nil {
		return fmt.Errorf("terminal %s: %w", op, err)
	}
	return nil
}

// MoveTo emits ESC[<row+1>;<col+1>H.
func (w *Writer) MoveTo(row, col int) error {
	w.buf = AppendCursorPosition(w.buf[:0], row, col)
	return w.flush("move")
}

// PutCell emits the SGR form of one character.
func (w *Writer) PutCell(s style.Style, ch byte) error {
	w.buf = style.AppendSGR(w.buf[:0], s, ch)
	return w.flush("put cell")
}

// EnterAltScreen emits the alternate-screen and autowrap-off sequences.
func (w *Writer) EnterAltScreen() error {
	w.buf = append(w.buf[:0], AltScreenEnter...)
	w.buf = append(w.buf, AutowrapOff...)
	return w.flush("enter alt screen")
}

// LeaveAltScreen emits the main-screen and autowrap-on sequences.
func (w *Writer) LeaveAltScreen() error {
	w.buf = append(w.buf[:0], AltScreenLeave...)
	w.buf = append(w.buf, AutowrapOn...)
	return w.flush("leave alt screen")
}

// AppendCursorPosition appends a cursor move to the 0-indexed (row, col).
// Negative values are treated as 0.
func AppendCursorPosition(dst []byte, row, col int) []byte {
	dst = append(dst, cupPrefix...)
	dst = strconv.AppendInt(dst, int64(max(row, 0)+1), 10)
	dst = append(dst, cupSep)
	dst = strconv.AppendInt(dst, int64(max(col, 0)+1), 10)
	return append(dst, cupFinal)
}
