// Package testutil provides a fake terminal for tests. It records every
// write and decodes the byte stream into a grid of styled cells, so tests
// can assert on the composited picture as well as on raw bytes.
package testutil

import (
	"bytes"
	"errors"
	"sync"
)

// ErrInjected is the default error returned once a FakeTerminal starts
// failing writes.
var ErrInjected = errors.New("injected write failure")

// FakeTerminal is an io.Writer standing in for a terminal device.
type FakeTerminal struct {
	mu sync.Mutex

	width, height int

	raw    bytes.Buffer
	writes []string

	failAfter int // -1 never fails
	failErr   error
}

// NewFakeTerminal returns a fake terminal of the given size.
func NewFakeTerminal(width, height int) *FakeTerminal {
	return &FakeTerminal{width: width, height: height, failAfter: -1}
}

// Write records p as one write.
func (f *FakeTerminal) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAfter == 0 {
		return 0, f.failErr
	}
	if f.failAfter > 0 {
		f.failAfter--
	}
	f.writes = append(f.writes, string(p))
	f.raw.Write(p)
	return len(p), nil
}

// FailAfter lets n more writes succeed, then fails every write with err
// (ErrInjected if err is nil).
func (f *FakeTerminal) FailAfter(n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		err = ErrInjected
	}
	f.failAfter = n
	f.failErr = err
}

// Output returns everything written so far.
func (f *FakeTerminal) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.raw.String()
}

// Writes returns each Write call's payload in order.
func (f *FakeTerminal) Writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

// Reset forgets recorded output. Failure injection is kept.
func (f *FakeTerminal) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raw.Reset()
	f.writes = nil
}

// Snapshot decodes everything written so far.
func (f *FakeTerminal) Snapshot() *Snapshot {
	f.mu.Lock()
	data := bytes.Clone(f.raw.Bytes())
	f.mu.Unlock()
	return Decode(data, f.width, f.height)
}
