package render

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenSink blits frames to a tcell screen, centered when the
// terminal is larger than the grid and clipped when smaller.
type ScreenSink struct {
	screen tcell.Screen
	status func() string
}

// NewScreenSink creates a sink drawing to the given screen.
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen}
}

// SetStatus installs a status line provider. The text is drawn on the
// terminal's bottom row, outside the grid.
func (s *ScreenSink) SetStatus(status func() string) {
	s.status = status
}

// Flush implements Sink.
func (s *ScreenSink) Flush(f *Frame) error {
	s.screen.Clear()

	sw, sh := s.screen.Size()
	offX := (sw - f.Width()) / 2
	offY := (sh - f.Height()) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c := f.At(x, y)
			s.screen.SetContent(offX+x, offY+y, c.Rune, nil, c.Style)
		}
	}

	if s.status != nil && sh > 0 {
		x := 0
		for _, ch := range s.status() {
			if x >= sw {
				break
			}
			s.screen.SetContent(x, sh-1, ch, nil, StyleStatus)
			x++
		}
	}

	s.screen.Show()
	return nil
}
