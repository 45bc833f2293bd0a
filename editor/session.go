// Package editor runs the viewer session: one explicit state object driven by
// a render, read, apply loop.
package editor

import (
	"errors"
	"log"

	"github.com/lixenwraith/kilo/buffer"
	"github.com/lixenwraith/kilo/parameter"
	"github.com/lixenwraith/kilo/render"
	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/viewport"
)

// ErrQuit is returned by the loop when the user asks to leave
var ErrQuit = errors.New("quit requested")

// Console is the terminal surface a session draws on and reads from
type Console interface {
	Write(p []byte) (int, error)
	ReadKey() (terminal.Event, error)
}

// Session is the process-wide viewer state
// Single mutator: the goroutine calling Run
type Session struct {
	console  Console
	buf      *buffer.Buffer
	view     *viewport.Engine
	renderer *render.Renderer
}

// New creates a session over buf sized to the terminal
func New(console Console, buf *buffer.Buffer, size terminal.Size) *Session {
	return &Session{
		console:  console,
		buf:      buf,
		view:     viewport.New(buf, size.Rows, size.Cols),
		renderer: render.NewRenderer(console),
	}
}

// State returns the current navigation state
func (s *Session) State() viewport.State {
	return s.view.State()
}

// Refresh redraws the whole screen
func (s *Session) Refresh() error {
	return s.renderer.Draw(s.buf, s.view.State())
}

// ProcessKey blocks for one key and applies it
func (s *Session) ProcessKey() error {
	ev, err := s.console.ReadKey()
	if err != nil {
		return err
	}

	if ev.IsCtrl(parameter.QuitKey) {
		log.Printf("Quit key pressed")
		return ErrQuit
	}

	s.view.Apply(ev.Key)
	return nil
}

// Run loops until quit or a fatal error; the returned error is never nil
func (s *Session) Run() error {
	for {
		if err := s.Refresh(); err != nil {
			return err
		}
		if err := s.ProcessKey(); err != nil {
			return err
		}
	}
}
