package renderers

import (
	"github.com/lixenwraith/supernova/constants"
	"github.com/lixenwraith/supernova/render"
	"github.com/lixenwraith/supernova/sim"
)

// RemnantRenderer draws the compact core over any phase symbol, from
// the instant the bounce exposes it onward.
type RemnantRenderer struct {
	star *sim.Star
}

// NewRemnantRenderer creates the remnant-layer renderer.
func NewRemnantRenderer(star *sim.Star) *RemnantRenderer {
	return &RemnantRenderer{star: star}
}

// Render implements render.Renderer. Only the bounding box around the
// core is scanned; the radius never exceeds a few cells.
func (r *RemnantRenderer) Render(f *render.Frame) {
	radius := r.star.CoreRadius
	if radius <= 0 {
		return
	}

	minX := int(constants.GridCenterX - radius)
	maxX := int(constants.GridCenterX + radius)
	minY := int(constants.GridCenterY - radius/constants.VerticalScale)
	maxY := int(constants.GridCenterY + radius/constants.VerticalScale)

	if minX < 0 {
		minX = 0
	}
	if maxX >= f.Width() {
		maxX = f.Width() - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= f.Height() {
		maxY = f.Height() - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if render.Distance(x, y) <= radius {
				f.Set(x, y, constants.SymbolCore, render.StyleCore)
			}
		}
	}
}
