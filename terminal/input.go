package terminal

// ByteSource is a bounded-timeout byte reader, usually a Backend
type ByteSource interface {
	PollByte() (b byte, ok bool, err error)
}

// decodeState tracks progress through an escape sequence
type decodeState uint8

const (
	stateEscape   decodeState = iota // ESC seen, introducer pending
	stateIntro                       // ESC + introducer seen, final byte pending
	stateCSIParam                    // ESC [ digit seen, '~' pending
	stateDone
)

// Decoder turns raw input bytes into key events
// Lookahead after ESC is bounded to three bytes: introducer, parameter, final
type Decoder struct {
	src       ByteSource
	lookahead [3]byte
	n         int
}

// NewDecoder creates a decoder reading from src
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// ReadKey blocks until a key is available
// Read timeouts are absorbed while waiting for the first byte; inside an
// escape sequence a timeout ends the sequence and reports KeyEscape
func (d *Decoder) ReadKey() (Event, error) {
	b, err := d.waitByte()
	if err != nil {
		return Event{}, err
	}
	if b != escByte {
		return Event{Key: KeyChar, Char: b}, nil
	}

	d.n = 0
	state := stateEscape
	for state != stateDone {
		next, ok, err := d.src.PollByte()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return Event{Key: KeyEscape}, nil
		}
		d.lookahead[d.n] = next
		d.n++

		var key Key
		state, key = d.step(state, next)
		if state == stateDone {
			return Event{Key: key}, nil
		}
	}
	return Event{Key: KeyEscape}, nil
}

// waitByte polls the source until one byte arrives
func (d *Decoder) waitByte() (byte, error) {
	for {
		b, ok, err := d.src.PollByte()
		if err != nil {
			return 0, err
		}
		if ok {
			return b, nil
		}
	}
}

// step advances the escape FSM by one byte; the key is valid only in stateDone
func (d *Decoder) step(state decodeState, b byte) (decodeState, Key) {
	switch state {
	case stateEscape:
		// Introducer is judged together with the byte after it
		return stateIntro, KeyNone

	case stateIntro:
		switch d.lookahead[0] {
		case '[':
			if b >= '0' && b <= '9' {
				return stateCSIParam, KeyNone
			}
			return stateDone, lookupCSI(b)
		case 'O':
			return stateDone, lookupSS3(b)
		}
		return stateDone, KeyEscape

	case stateCSIParam:
		if b != '~' {
			return stateDone, KeyEscape
		}
		return stateDone, lookupTilde(d.lookahead[1])
	}
	return stateDone, KeyEscape
}

// lookupCSI maps ESC [ <letter>
func lookupCSI(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyEscape
}

// lookupSS3 maps ESC O <letter>
func lookupSS3(final byte) Key {
	switch final {
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyEscape
}

// lookupTilde maps ESC [ <digit> ~ (VT220 editing keypad)
func lookupTilde(param byte) Key {
	switch param {
	case '1', '7':
		return KeyHome
	case '3':
		return KeyDelete
	case '4', '8':
		return KeyEnd
	case '5':
		return KeyPageUp
	case '6':
		return KeyPageDown
	}
	return KeyEscape
}
