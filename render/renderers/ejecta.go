package renderers

import (
	"math"

	"github.com/lixenwraith/supernova/constants"
	"github.com/lixenwraith/supernova/render"
	"github.com/lixenwraith/supernova/sim"
)

// EjectaRenderer plots live particles over everything else. Multiple
// particles in one cell collapse to a single symbol, no blending.
type EjectaRenderer struct {
	ejecta *sim.ParticleStore
}

// NewEjectaRenderer creates the particle-layer renderer.
func NewEjectaRenderer(ejecta *sim.ParticleStore) *EjectaRenderer {
	return &EjectaRenderer{ejecta: ejecta}
}

// Render implements render.Renderer. Particle positions floor to cell
// coordinates; cells off the grid are dropped by the frame.
func (r *EjectaRenderer) Render(f *render.Frame) {
	particles := r.ejecta.Particles()
	for i := range particles {
		p := &particles[i]
		if !p.Alive() {
			continue
		}
		f.Set(int(math.Floor(p.X)), int(math.Floor(p.Y)), constants.SymbolEjecta, render.StyleEjecta)
	}
}
