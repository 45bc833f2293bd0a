package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/kilo/terminal"
)

// Restorer is the part of the terminal the crash path needs
type Restorer interface {
	ClearScreen() error
	ExitRawMode() error
}

// crashTerminal is the terminal restored on a crash, nil before SetCrashTerminal
var crashTerminal Restorer

// Overridable for tests
var (
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// SetCrashTerminal registers the terminal that HandleCrash restores
func SetCrashTerminal(t Restorer) {
	crashTerminal = t
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Terminal cleanup if available
	if crashTerminal != nil {
		crashTerminal.ClearScreen()
		crashTerminal.ExitRawMode()
	} else {
		// Fallback for edge cases
		terminal.EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(crashOutput, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}
