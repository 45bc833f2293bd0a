package parameter

// Identity
const (
	// Version is shown in the welcome banner of an empty buffer
	Version = "0.0.1"

	// WelcomePrefix precedes Version in the welcome banner
	WelcomePrefix = " Kilo editor -- version "
)

// Screen Layout
const (
	// EmptyRowGlyph marks screen rows below the end of the buffer
	EmptyRowGlyph = '~'

	// WelcomeRowDivisor places the banner at screenRows/WelcomeRowDivisor
	WelcomeRowDivisor = 3
)

// Input
const (
	// ReadTimeoutDeciseconds is the raw-mode VTIME value, a read returns after
	// one byte or this many tenths of a second. It is also the longest wait
	// before a lone ESC is reported as Escape, so it stays at one tenth
	// rather than the full second some kilo builds use
	ReadTimeoutDeciseconds = 1

	// QuitKey is the letter that, combined with Ctrl, leaves the viewer
	QuitKey = 'q'
)

// Diagnostics
const (
	// DebugLogging routes the global logger to LogDir/LogFileName instead of discarding it
	DebugLogging = false

	// LogDir is created relative to the working directory when DebugLogging is set
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "kilo.log"
)

// MaxLogSize triggers rotation of an existing log file at startup
const MaxLogSize = 10 * 1024 * 1024
