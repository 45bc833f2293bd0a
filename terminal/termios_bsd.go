//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TIOCGETA

	// TIOCSETAF drains output and discards pending input before applying
	ioctlWriteTermiosFlush = unix.TIOCSETAF
)
