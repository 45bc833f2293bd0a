//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"fmt"
	"runtime"
)

// unsupportedBackend fails every operation; raw mode needs termios
type unsupportedBackend struct{}

func newBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error {
	return fmt.Errorf("%w: raw mode unsupported on %s", ErrTerminalSetup, runtime.GOOS)
}

func (unsupportedBackend) Fini() error { return nil }

func (unsupportedBackend) Size() (int, int, error) {
	return 0, 0, fmt.Errorf("%w: unsupported on %s", ErrTerminalQuery, runtime.GOOS)
}

func (unsupportedBackend) Write(p []byte) error {
	return fmt.Errorf("%w: unsupported on %s", ErrTerminalSetup, runtime.GOOS)
}

func (unsupportedBackend) PollByte() (byte, bool, error) {
	return 0, false, fmt.Errorf("%w: unsupported on %s", ErrInputRead, runtime.GOOS)
}

func resetTerminalMode() {}
