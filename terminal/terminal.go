package terminal

import (
	"fmt"
	"io"
	"os"
)

// Size is the window dimension in cells, queried once at startup
type Size struct {
	Rows int
	Cols int
}

// Terminal provides low-level terminal access on top of a Backend
// Single-owner: the main loop is the only caller, no locking
type Terminal struct {
	backend Backend
	decoder *Decoder
	raw     bool
}

// New creates a Terminal bound to the process stdin/stdout
func New() *Terminal {
	return NewWithBackend(newBackend())
}

// NewWithBackend creates a Terminal over an explicit backend
func NewWithBackend(b Backend) *Terminal {
	return &Terminal{
		backend: b,
		decoder: NewDecoder(b),
	}
}

// EnterRawMode disables canonical input, echo, signals and flow control
func (t *Terminal) EnterRawMode() error {
	if t.raw {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return err
	}
	t.raw = true
	return nil
}

// ExitRawMode restores the settings saved by EnterRawMode. Safe to call multiple times
func (t *Terminal) ExitRawMode() error {
	if !t.raw {
		return nil
	}
	if err := t.backend.Fini(); err != nil {
		return err
	}
	t.raw = false
	return nil
}

// IsRaw reports whether raw mode is currently held
func (t *Terminal) IsRaw() bool {
	return t.raw
}

// Size returns the terminal dimensions
func (t *Terminal) Size() (Size, error) {
	rows, cols, err := t.backend.Size()
	if err != nil {
		return Size{}, err
	}
	return Size{Rows: rows, Cols: cols}, nil
}

// ReadKey blocks until the next key event
func (t *Terminal) ReadKey() (Event, error) {
	return t.decoder.ReadKey()
}

// Write sends p to the terminal in a single backend write
func (t *Terminal) Write(p []byte) (int, error) {
	if err := t.backend.Write(p); err != nil {
		return 0, fmt.Errorf("terminal write: %w", err)
	}
	return len(p), nil
}

// ClearScreen erases the display and homes the cursor
func (t *Terminal) ClearScreen() error {
	seq := make([]byte, 0, len(csiClear)+len(csiHome))
	seq = append(seq, csiClear...)
	seq = append(seq, csiHome...)
	_, err := t.Write(seq)
	return err
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if ExitRawMode cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiClear)
	w.Write(csiHome)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
