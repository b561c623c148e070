package renderers

import (
	"math/rand/v2"

	"github.com/lixenwraith/supernova/constants"
	"github.com/lixenwraith/supernova/render"
	"github.com/lixenwraith/supernova/sim"
)

// PhaseRenderer draws the phase base symbol: the pulsing envelope,
// the infalling body, the shock annuli, or the stochastic nebula.
// Every cell gets at most one symbol, default blank.
type PhaseRenderer struct {
	star *sim.Star
	rng  *rand.Rand
}

// NewPhaseRenderer creates the base-layer renderer. The rng drives the
// nebula fill, re-rolled per cell per frame.
func NewPhaseRenderer(star *sim.Star, rng *rand.Rand) *PhaseRenderer {
	return &PhaseRenderer{star: star, rng: rng}
}

// Render implements render.Renderer.
func (r *PhaseRenderer) Render(f *render.Frame) {
	style := render.PhaseStyle(r.star.Phase)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if sym, ok := r.symbolAt(render.Distance(x, y)); ok {
				f.Set(x, y, sym, style)
			}
		}
	}
}

// symbolAt applies the phase-specific geometric test to a distance.
func (r *PhaseRenderer) symbolAt(d float64) (rune, bool) {
	switch r.star.Phase {
	case sim.PhaseGiant:
		if d <= r.star.Radius {
			return constants.SymbolGiant, true
		}
	case sim.PhaseCollapse:
		if d <= r.star.Radius {
			return constants.SymbolCollapse, true
		}
	case sim.PhaseBounce:
		if d >= r.star.Radius-constants.BounceShellThickness && d <= r.star.Radius {
			return constants.SymbolShock, true
		}
	case sim.PhaseExplosion:
		if d >= r.star.ExplosionRadius-constants.ShockShellThickness && d <= r.star.ExplosionRadius {
			return constants.SymbolShock, true
		}
	case sim.PhaseNebula:
		if d <= r.star.ExplosionRadius && r.rng.IntN(constants.NebulaFillChance) == 0 {
			return constants.SymbolNebula, true
		}
	}
	return 0, false
}
