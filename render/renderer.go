package render

import (
	"io"

	"github.com/lixenwraith/kilo/viewport"
)

// Renderer draws frames with exactly one write each
// The frame is assembled in memory first; partial flushes would flicker
type Renderer struct {
	out io.Writer
	buf []byte
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Draw renders a full-screen frame and writes it in a single call
func (r *Renderer) Draw(lines Lines, st viewport.State) error {
	r.buf = Frame(r.buf[:0], lines, st)
	_, err := r.out.Write(r.buf)
	return err
}
