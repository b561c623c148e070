package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/supernova/sim"
)

// RGB color definitions per visual element
var (
	RgbEnvelope = tcell.NewRGBColor(255, 180, 60)  // Amber giant envelope
	RgbInfall   = tcell.NewRGBColor(255, 80, 40)   // Collapsing layers red
	RgbShock    = tcell.NewRGBColor(255, 240, 160) // Shock front yellow-white
	RgbNebula   = tcell.NewRGBColor(80, 200, 220)  // Remnant gas cyan
	RgbCore     = tcell.NewRGBColor(160, 220, 255) // Neutron star ice blue
	RgbEjecta   = tcell.NewRGBColor(255, 215, 0)   // Ejecta gold
	RgbStatus   = tcell.NewRGBColor(180, 180, 180) // Status line gray
)

// Styles derived once, stored per cell by the renderers
var (
	StyleBlank  = tcell.StyleDefault
	StyleCore   = tcell.StyleDefault.Foreground(RgbCore)
	StyleEjecta = tcell.StyleDefault.Foreground(RgbEjecta)
	StyleStatus = tcell.StyleDefault.Foreground(RgbStatus)
)

// PhaseStyle returns the style for a phase's base symbol.
func PhaseStyle(p sim.Phase) tcell.Style {
	switch p {
	case sim.PhaseGiant:
		return tcell.StyleDefault.Foreground(RgbEnvelope)
	case sim.PhaseCollapse:
		return tcell.StyleDefault.Foreground(RgbInfall)
	case sim.PhaseBounce, sim.PhaseExplosion:
		return tcell.StyleDefault.Foreground(RgbShock)
	case sim.PhaseNebula:
		return tcell.StyleDefault.Foreground(RgbNebula)
	}
	return tcell.StyleDefault
}
