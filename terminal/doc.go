// Package terminal provides direct ANSI terminal control for the viewer.
//
// Features:
//   - Raw input mode with a bounded read timeout (VMIN=0, VTIME>0)
//   - Window size query
//   - Key decoding of CSI/SS3 escape sequences into navigation keys
//   - Escape-sequence fragments for cursor and line control
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with VT100-compatible terminals.
package terminal
