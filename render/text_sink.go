package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/supernova/constants"
)

// ansiHomeClear repositions the cursor and clears the terminal, the
// classic full-redraw animation loop.
var ansiHomeClear = []byte("\x1b[H\x1b[J")

// TextSink writes frames as plain text. Each flush is one ANSI clear
// followed by the full grid. Styles are ignored entirely.
type TextSink struct {
	w *bufio.Writer
}

// NewTextSink creates a sink writing ANSI-prefixed frames to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{
		w: bufio.NewWriterSize(w, (constants.GridWidth+1)*constants.GridHeight+len(ansiHomeClear)),
	}
}

// Flush implements Sink.
func (s *TextSink) Flush(f *Frame) error {
	if _, err := s.w.Write(ansiHomeClear); err != nil {
		return err
	}
	if _, err := f.WriteTo(s.w); err != nil {
		return err
	}
	return s.w.Flush()
}
