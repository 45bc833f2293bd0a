package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/kilo/terminal"
)

// scriptBackend is an in-memory terminal: fixed size, scripted input, recorded output
type scriptBackend struct {
	input   []byte
	sizeErr error
	initErr error

	raw    bool
	inits  int
	finis  int
	writes []string
}

func (b *scriptBackend) Init() error {
	b.inits++
	if b.initErr != nil {
		return b.initErr
	}
	b.raw = true
	return nil
}

func (b *scriptBackend) Fini() error {
	b.finis++
	b.raw = false
	return nil
}

func (b *scriptBackend) Size() (int, int, error) {
	if b.sizeErr != nil {
		return 0, 0, b.sizeErr
	}
	return 24, 80, nil
}

func (b *scriptBackend) Write(p []byte) error {
	b.writes = append(b.writes, string(p))
	return nil
}

func (b *scriptBackend) PollByte() (byte, bool, error) {
	if len(b.input) == 0 {
		return 0, false, io.ErrUnexpectedEOF
	}
	c := b.input[0]
	b.input = b.input[1:]
	return c, true, nil
}

func (b *scriptBackend) lastWrite() string {
	if len(b.writes) == 0 {
		return ""
	}
	return b.writes[len(b.writes)-1]
}

const clearSeq = "\x1b[2J\x1b[H"

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "view.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestRun_QuitRestoresTerminal(t *testing.T) {
	setupLogging(false)
	path := writeFile(t, "hello\nworld\n")
	b := &scriptBackend{input: []byte{0x1b, '[', 'B', 0x11}}
	var stderr bytes.Buffer

	if code := run([]string{path}, terminal.NewWithBackend(b), &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected silent quit, got %q", stderr.String())
	}
	if b.raw || b.finis != 1 {
		t.Errorf("Expected raw mode restored once, raw=%v finis=%d", b.raw, b.finis)
	}
	if len(b.writes) != 3 {
		t.Fatalf("Expected 2 frames and a clear, got %d writes", len(b.writes))
	}
	if !strings.HasPrefix(b.writes[0], "\x1b[Hhello\x1b[K\r\nworld\x1b[K") {
		t.Errorf("Unexpected first frame %q", b.writes[0][:32])
	}
	if !strings.HasSuffix(b.writes[1], "\x1b[2;1H") {
		t.Error("Expected cursor moved down in second frame")
	}
	if b.lastWrite() != clearSeq {
		t.Errorf("Expected final clear, got %q", b.lastWrite())
	}
}

func TestRun_EmptyBufferShowsWelcome(t *testing.T) {
	setupLogging(false)
	b := &scriptBackend{input: []byte{0x11}}
	var stderr bytes.Buffer

	run(nil, terminal.NewWithBackend(b), &stderr)

	if !strings.Contains(b.writes[0], "Kilo editor -- version 0.0.1") {
		t.Error("Expected welcome banner in first frame")
	}
}

func TestRun_SizeErrorDrawsNothing(t *testing.T) {
	setupLogging(false)
	b := &scriptBackend{sizeErr: fmt.Errorf("%w: no window", terminal.ErrTerminalQuery)}
	var stderr bytes.Buffer

	if code := run(nil, terminal.NewWithBackend(b), &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	for _, w := range b.writes {
		if strings.Contains(w, "~") {
			t.Errorf("Expected no frame before size is known, got %q", w)
		}
	}
	if b.lastWrite() != clearSeq {
		t.Errorf("Expected screen cleared, got %q", b.lastWrite())
	}
	if b.raw {
		t.Error("Expected raw mode restored")
	}
	if !strings.Contains(stderr.String(), "terminal size query failed") {
		t.Errorf("Expected size diagnostic, got %q", stderr.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	setupLogging(false)
	b := &scriptBackend{input: []byte{0x11}}
	var stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "absent.txt")

	if code := run([]string{missing}, terminal.NewWithBackend(b), &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "cannot open file") {
		t.Errorf("Expected open diagnostic, got %q", stderr.String())
	}
	if b.raw {
		t.Error("Expected raw mode restored")
	}
	if len(b.input) != 1 {
		t.Error("Expected no key read before the file loaded")
	}
}

func TestRun_RawModeFailure(t *testing.T) {
	setupLogging(false)
	b := &scriptBackend{initErr: fmt.Errorf("%w: stdin is not a terminal", terminal.ErrTerminalSetup)}
	var stderr bytes.Buffer

	if code := run(nil, terminal.NewWithBackend(b), &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if b.finis != 0 {
		t.Errorf("Expected no restore without raw mode, got %d", b.finis)
	}
	if !strings.Contains(stderr.String(), "not a terminal") {
		t.Errorf("Expected setup diagnostic, got %q", stderr.String())
	}
}

func TestRun_ReadErrorIsFatal(t *testing.T) {
	setupLogging(false)
	b := &scriptBackend{}
	var stderr bytes.Buffer

	run(nil, terminal.NewWithBackend(b), &stderr)

	if !strings.Contains(stderr.String(), io.ErrUnexpectedEOF.Error()) {
		t.Errorf("Expected read diagnostic, got %q", stderr.String())
	}
	if b.raw {
		t.Error("Expected raw mode restored")
	}
}

func TestRun_TooManyArguments(t *testing.T) {
	b := &scriptBackend{}
	var stderr bytes.Buffer

	if code := run([]string{"a", "b"}, terminal.NewWithBackend(b), &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if b.inits != 0 || len(b.writes) != 0 {
		t.Error("Expected terminal untouched on usage error")
	}
	if !strings.HasPrefix(stderr.String(), "usage:") {
		t.Errorf("Expected usage line, got %q", stderr.String())
	}
}
