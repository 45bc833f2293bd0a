package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/kilo/buffer"
	"github.com/lixenwraith/kilo/core"
	"github.com/lixenwraith/kilo/editor"
	"github.com/lixenwraith/kilo/parameter"
	"github.com/lixenwraith/kilo/terminal"
)

func main() {
	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		core.HandleCrash(recover())
	}()

	logFile := setupLogging(parameter.DebugLogging)
	code := run(os.Args[1:], terminal.New(), os.Stderr)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// run is the whole program minus process exit; every path returns 1
func run(args []string, term *terminal.Terminal, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(stderr, "usage: kilo [path]")
		return 1
	}

	core.SetCrashTerminal(term)
	err := view(args, term)

	// Screen is cleared while still raw, so the diagnostic lands on a clean terminal
	term.ClearScreen()
	if rerr := term.ExitRawMode(); rerr != nil && err == nil {
		err = rerr
	}

	if errors.Is(err, editor.ErrQuit) {
		log.Printf("Session ended by user")
		return 1
	}
	log.Printf("Fatal: %v", err)
	fmt.Fprintf(stderr, "kilo: %v\n", err)
	return 1
}

// view acquires the terminal, loads the optional file and runs the session
func view(args []string, term *terminal.Terminal) error {
	if err := term.EnterRawMode(); err != nil {
		return err
	}

	size, err := term.Size()
	if err != nil {
		return err
	}
	log.Printf("Terminal size %dx%d", size.Cols, size.Rows)

	buf := buffer.New()
	if len(args) == 1 {
		buf, err = buffer.Load(args[0])
		if err != nil {
			return err
		}
	}

	return editor.New(term, buf, size).Run()
}
