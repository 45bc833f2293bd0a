package terminal

import "errors"

var (
	// ErrTerminalSetup reports a failure to enter or leave raw mode
	ErrTerminalSetup = errors.New("terminal setup failed")

	// ErrTerminalQuery reports a window size the terminal could not provide
	ErrTerminalQuery = errors.New("terminal size query failed")

	// ErrInputRead reports a read failure other than "no data yet"
	ErrInputRead = errors.New("input read failed")
)
