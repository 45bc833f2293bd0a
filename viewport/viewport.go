// Package viewport owns the cursor and scroll offsets of the viewer.
//
// The cursor is kept screen-relative: CursorRow indexes the visible rows and
// the buffer line under the cursor is RowOffset+CursorRow. The renderer only
// needs the lines in [RowOffset, RowOffset+ScreenRows).
package viewport

import "github.com/lixenwraith/kilo/terminal"

// Lines is the read-only view of the buffer the engine needs
type Lines interface {
	NumRows() int
	RowLen(i int) int
}

// State is the navigation state; all fields are written only by Engine
type State struct {
	CursorCol  int
	CursorRow  int
	RowOffset  int
	ColOffset  int // Last column set by horizontal movement, restored on vertical moves
	ScreenRows int
	ScreenCols int
}

// Line returns the buffer index under the cursor
func (s State) Line() int {
	return s.RowOffset + s.CursorRow
}

// Engine applies key events to State
type Engine struct {
	lines Lines
	state State
}

// New creates an engine with the cursor at the top-left of a rows x cols screen
func New(lines Lines, rows, cols int) *Engine {
	return &Engine{
		lines: lines,
		state: State{ScreenRows: rows, ScreenCols: cols},
	}
}

// State returns a snapshot of the navigation state
func (e *Engine) State() State {
	return e.state
}

// Apply performs the transition for key and reports whether key is a navigation key
func (e *Engine) Apply(key terminal.Key) bool {
	switch key {
	case terminal.KeyUp:
		e.MoveUp()
	case terminal.KeyDown:
		e.MoveDown()
	case terminal.KeyLeft:
		e.MoveLeft()
	case terminal.KeyRight:
		e.MoveRight()
	case terminal.KeyHome:
		e.Home()
	case terminal.KeyEnd:
		e.End()
	case terminal.KeyPageUp:
		e.PageUp()
	case terminal.KeyPageDown:
		e.PageDown()
	default:
		return false
	}
	return true
}

// lineLen returns the length of buffer line i, 0 where no line exists
func (e *Engine) lineLen(i int) int {
	if i < 0 || i >= e.lines.NumRows() {
		return 0
	}
	return e.lines.RowLen(i)
}

// snapColumn clamps the cursor to a shorter line, else restores it toward ColOffset
func (e *Engine) snapColumn() {
	s := &e.state
	n := e.lineLen(s.Line())
	if n < s.CursorCol {
		s.CursorCol = n
	} else {
		s.CursorCol = min(n, s.ColOffset)
	}
}

// MoveUp moves the cursor one row up, scrolling at the top edge
func (e *Engine) MoveUp() {
	s := &e.state
	if s.CursorRow > 0 {
		s.CursorRow--
	} else if s.RowOffset > 0 {
		s.RowOffset--
	}
	e.snapColumn()
}

// MoveDown moves the cursor one row down, scrolling at the bottom edge
// The cursor may rest on the row just past the last line, never further
func (e *Engine) MoveDown() {
	s := &e.state
	if s.Line() >= e.lines.NumRows() {
		return
	}
	if s.CursorRow < s.ScreenRows-1 {
		s.CursorRow++
	} else {
		s.RowOffset++
	}
	e.snapColumn()
}

// MoveLeft moves one column left and remembers the column
func (e *Engine) MoveLeft() {
	s := &e.state
	if s.CursorCol > 0 {
		s.CursorCol--
		s.ColOffset = s.CursorCol
	}
}

// MoveRight moves one column right within both the screen and the line
func (e *Engine) MoveRight() {
	s := &e.state
	if s.CursorCol < s.ScreenCols-1 && s.CursorCol < e.lineLen(s.Line()) {
		s.CursorCol++
		s.ColOffset = s.CursorCol
	}
}

// Home moves to the first column
func (e *Engine) Home() {
	e.state.CursorCol = 0
}

// End moves to the last screen column, regardless of the line length
func (e *Engine) End() {
	e.state.CursorCol = e.state.ScreenCols - 1
}

// PageUp is ScreenRows single-row moves up
func (e *Engine) PageUp() {
	for range e.state.ScreenRows {
		e.MoveUp()
	}
}

// PageDown is ScreenRows single-row moves down
func (e *Engine) PageDown() {
	for range e.state.ScreenRows {
		e.MoveDown()
	}
}
