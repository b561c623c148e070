package render

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of a composed frame. The rune alone
// defines the text output contract; the style only affects screen
// presentation.
type Cell struct {
	Rune  rune
	Style tcell.Style
}
