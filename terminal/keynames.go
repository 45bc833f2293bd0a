package terminal

import "strconv"

// keyToName maps Key constants to canonical log names
var keyToName = map[Key]string{
	KeyNone:   "none",
	KeyChar:   "char",
	KeyEscape: "escape",
	KeyDelete: "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
}

// String returns the canonical name for a Key constant
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}

// String renders literal bytes in caret notation for control characters
func (ev Event) String() string {
	if ev.Key != KeyChar {
		return ev.Key.String()
	}
	switch {
	case ev.Char < 0x20:
		return "ctrl_" + string(rune(ev.Char+'`'))
	case ev.Char == 0x7f:
		return "backspace"
	case ev.Char > 0x7f:
		return "0x" + strconv.FormatUint(uint64(ev.Char), 16)
	}
	return string(rune(ev.Char))
}
