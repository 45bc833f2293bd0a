// @focus: #terminal { ansi }
package terminal

import "strconv"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi         = []byte("\x1b[")
	csiClear    = []byte("\x1b[2J")
	csiHome     = []byte("\x1b[H")
	csiEraseEOL = []byte("\x1b[K")

	// Row separator; output post processing is off in raw mode
	crlf = []byte("\r\n")
)

// Exported views of the fragments used by the renderer
var (
	// SeqCursorHome moves the cursor to the top-left cell
	SeqCursorHome = csiHome
	// SeqEraseLine erases from the cursor to the end of the line
	SeqEraseLine = csiEraseEOL
	// SeqClearScreen erases the whole display
	SeqClearScreen = csiClear
	// SeqNewline ends a screen row
	SeqNewline = crlf
)

// appendInt writes a non-negative integer without intermediate allocation
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	return strconv.AppendInt(dst, int64(n), 10)
}

// AppendCursorPos appends a cursor positioning sequence (0-indexed input, 1-based on the wire)
func AppendCursorPos(dst []byte, row, col int) []byte {
	dst = append(dst, csi...)
	dst = appendInt(dst, row+1)
	dst = append(dst, ';')
	dst = appendInt(dst, col+1)
	return append(dst, 'H')
}
