// @focus: #sys { io } #input { keys }
package terminal

// Key represents a parsed input key
type Key uint8

// Key constants
const (
	KeyNone Key = iota
	KeyChar     // Literal byte, printable or control (check Event.Char)

	// Control keys
	KeyEscape
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Event is one decoded key press
type Event struct {
	Key  Key
	Char byte // For KeyChar
}

// escByte introduces every multi-byte input sequence
const escByte = 0x1b

// CtrlKey returns the byte a terminal sends for Ctrl+k
func CtrlKey(k byte) byte {
	return k & 0x1f
}

// IsCtrl reports whether ev is the literal Ctrl+k byte
func (ev Event) IsCtrl(k byte) bool {
	return ev.Key == KeyChar && ev.Char == CtrlKey(k)
}
