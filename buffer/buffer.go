// Package buffer holds the read-only line model of the viewed file.
package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// ErrFileOpen reports a path that could not be opened for reading
var ErrFileOpen = errors.New("cannot open file")

// Line is one file line without its trailing "\n"/"\r" bytes
// Bytes are opaque, one byte is one display column
type Line []byte

// Len returns the line length in bytes
func (l Line) Len() int {
	return len(l)
}

// Buffer is the ordered, immutable sequence of lines loaded at startup
type Buffer struct {
	lines []Line
}

// New returns an empty buffer
func New() *Buffer {
	return &Buffer{}
}

// Load reads the file at path into a new buffer
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer f.Close()

	b, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	log.Printf("Loaded %d line(s) from %s", b.NumRows(), path)
	return b, nil
}

// Read splits r into lines, preserving empty lines and file order
// Line length is bounded only by memory
func Read(r io.Reader) (*Buffer, error) {
	b := New()
	br := bufio.NewReader(r)

	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			b.appendLine(raw)
		}
		if err == io.EOF {
			return b, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// appendLine takes ownership of raw with every trailing '\n' and '\r' removed
func (b *Buffer) appendLine(raw []byte) {
	n := len(raw)
	for n > 0 && (raw[n-1] == '\n' || raw[n-1] == '\r') {
		n--
	}
	b.lines = append(b.lines, Line(raw[:n:n]))
}

// NumRows returns the number of lines
func (b *Buffer) NumRows() int {
	return len(b.lines)
}

// Row returns line i; defined for 0 <= i < NumRows()
func (b *Buffer) Row(i int) Line {
	return b.lines[i]
}

// RowLen returns the length of line i; defined for 0 <= i < NumRows()
func (b *Buffer) RowLen(i int) int {
	return len(b.lines[i])
}
