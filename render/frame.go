package render

import (
	"github.com/lixenwraith/kilo/buffer"
	"github.com/lixenwraith/kilo/parameter"
	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/viewport"
)

// Lines is the read-only view of the buffer the renderer draws from
type Lines interface {
	NumRows() int
	Row(i int) buffer.Line
}

// welcome is the banner shown on an empty buffer
const welcome = parameter.WelcomePrefix + parameter.Version

// Frame appends one full-screen redraw of lines under st to dst and returns it
// Output depends only on its inputs: same lines and state give identical bytes
func Frame(dst []byte, lines Lines, st viewport.State) []byte {
	dst = append(dst, terminal.SeqCursorHome...)

	numRows := lines.NumRows()
	for y := 0; y < st.ScreenRows; y++ {
		fileRow := y + st.RowOffset
		if fileRow < numRows {
			line := lines.Row(fileRow)
			if len(line) > st.ScreenCols {
				line = line[:st.ScreenCols]
			}
			dst = append(dst, line...)
		} else {
			dst = append(dst, parameter.EmptyRowGlyph)
			if numRows == 0 && y == st.ScreenRows/parameter.WelcomeRowDivisor {
				dst = appendWelcome(dst, st.ScreenCols)
			}
		}

		dst = append(dst, terminal.SeqEraseLine...)
		if y < st.ScreenRows-1 {
			dst = append(dst, terminal.SeqNewline...)
		}
	}

	return terminal.AppendCursorPos(dst, st.CursorRow, st.CursorCol)
}

// appendWelcome centres the banner in cols, truncating when it does not fit
func appendWelcome(dst []byte, cols int) []byte {
	msg := welcome
	if len(msg) > cols {
		return append(dst, msg[:cols]...)
	}
	for padding := (cols - len(msg)) / 2; padding > 0; padding-- {
		dst = append(dst, ' ')
	}
	return append(dst, msg...)
}
