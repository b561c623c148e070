package render

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/supernova/constants"
)

// Frame is a fixed-size compositor grid. Renderers write cells in
// priority order, later writes overwriting earlier ones.
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a grid at the fixed simulation dimensions.
func NewFrame() *Frame {
	return NewFrameSize(constants.GridWidth, constants.GridHeight)
}

// NewFrameSize creates a grid with explicit dimensions.
func NewFrameSize(width, height int) *Frame {
	f := &Frame{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	f.Clear()
	return f
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Clear resets all cells to blanks using exponential copy.
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = Cell{Rune: constants.SymbolBlank, Style: StyleBlank}
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a cell, overwriting whatever a lower-priority renderer
// left there. Out-of-grid writes are dropped.
func (f *Frame) Set(x, y int, r rune, style tcell.Style) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = Cell{Rune: r, Style: style}
}

// At returns the cell at x, y, blank for out-of-grid coordinates.
func (f *Frame) At(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{Rune: constants.SymbolBlank, Style: StyleBlank}
	}
	return f.cells[y*f.width+x]
}

// Rune returns the rune at x, y.
func (f *Frame) Rune(x, y int) rune {
	return f.At(x, y).Rune
}

// Line renders row y as a plain string.
func (f *Frame) Line(y int) string {
	var sb strings.Builder
	sb.Grow(f.width)
	for x := 0; x < f.width; x++ {
		sb.WriteRune(f.cells[y*f.width+x].Rune)
	}
	return sb.String()
}

// Lines renders the whole grid as plain strings, one per row.
func (f *Frame) Lines() []string {
	lines := make([]string, f.height)
	for y := 0; y < f.height; y++ {
		lines[y] = f.Line(y)
	}
	return lines
}

// WriteTo emits the text contract: exactly height newline-terminated
// rows of width runes each.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	var total int64
	row := make([]byte, 0, f.width*utf8.UTFMax+1)
	for y := 0; y < f.height; y++ {
		row = row[:0]
		for x := 0; x < f.width; x++ {
			row = utf8.AppendRune(row, f.cells[y*f.width+x].Rune)
		}
		row = append(row, '\n')
		n, err := w.Write(row)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
