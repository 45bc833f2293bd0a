//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/kilo/parameter"
)

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *unix.Termios

	// Single-byte read buffer, raw mode delivers input byte by byte
	buf [1]byte
}

func newBackend() Backend {
	return newFileBackend(os.Stdin, os.Stdout)
}

// newFileBackend binds the backend to explicit devices; in carries the termios state
func newFileBackend(in, out *os.File) *unixBackend {
	return &unixBackend{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("%w: stdin is not a terminal", ErrTerminalSetup)
	}

	old, err := unix.IoctlGetTermios(b.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("%w: get attributes: %w", ErrTerminalSetup, err)
	}
	raw := *old

	// Input modes: no break, no CR-to-NL, no parity check, no strip char, no start/stop control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON

	// Output modes: disable post processing, "\r\n" must be written explicitly
	raw.Oflag &^= unix.OPOST

	// Control modes: 8-bit chars
	raw.Cflag |= unix.CS8

	// Local modes: echo off, canonical off, no extended functions, no signal chars
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	// Read returns after one byte or the timeout, whichever comes first
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = parameter.ReadTimeoutDeciseconds

	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermiosFlush, &raw); err != nil {
		return fmt.Errorf("%w: set attributes: %w", ErrTerminalSetup, err)
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() error {
	if b.oldTerm == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermiosFlush, b.oldTerm); err != nil {
		return fmt.Errorf("%w: restore attributes: %w", ErrTerminalSetup, err)
	}
	b.oldTerm = nil
	return nil
}

func (b *unixBackend) Size() (int, int, error) {
	cols, rows, err := term.GetSize(b.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrTerminalQuery, err)
	}
	if cols == 0 {
		return 0, 0, fmt.Errorf("%w: terminal reports zero columns", ErrTerminalQuery)
	}
	return rows, cols, nil
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

func (b *unixBackend) PollByte() (byte, bool, error) {
	n, err := unix.Read(b.inFd, b.buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %w", ErrInputRead, err)
	}

	if n == 0 {
		// VTIME elapsed
		return 0, false, nil
	}
	return b.buf[0], true, nil
}
