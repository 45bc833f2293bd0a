package terminal

// Backend abstracts platform-specific terminal operations.
// This interface allows the terminal package to run against the process tty
// or any injected device (pseudo-terminals, scripted fakes).
type Backend interface {
	// Lifecycle
	// Init enters raw input mode, saving the prior settings
	Init() error
	// Fini restores the settings saved by Init
	Fini() error

	// Capabilities
	// Size reports the window dimensions in cells
	Size() (rows, cols int, err error)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// PollByte performs one bounded read attempt.
	// ok is false when the read timeout elapsed with no data.
	PollByte() (b byte, ok bool, err error)
}
