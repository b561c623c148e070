// Package engine owns the simulation state and paces it at the fixed
// frame rate. One Tick advances physics and composes one frame; Run
// repeats Tick on a wall-clock ticker and pushes frames to a sink.
package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/supernova/constants"
	"github.com/lixenwraith/supernova/render"
	"github.com/lixenwraith/supernova/render/renderers"
	"github.com/lixenwraith/supernova/sim"
)

// Engine binds a star, its ejecta store, and the render pipeline that
// draws them.
type Engine struct {
	star     *sim.Star
	ejecta   *sim.ParticleStore
	pipeline *render.Pipeline
}

// New builds a ready engine. All randomness flows from rng, so a
// seeded source makes the whole animation reproducible.
func New(rng *rand.Rand) *Engine {
	ejecta := sim.NewParticleStore(rng)
	star := sim.NewStar(ejecta)

	pipeline := render.NewPipeline()
	pipeline.Register(renderers.NewPhaseRenderer(star, rng), render.PriorityBase)
	pipeline.Register(renderers.NewRemnantRenderer(star), render.PriorityRemnant)
	pipeline.Register(renderers.NewEjectaRenderer(ejecta), render.PriorityEjecta)

	return &Engine{
		star:     star,
		ejecta:   ejecta,
		pipeline: pipeline,
	}
}

// Star exposes the simulation state for status readouts and
// transition hooks.
func (e *Engine) Star() *sim.Star {
	return e.star
}

// Tick advances the simulation by dt seconds and composes the frame
// for the new state. The returned frame is reused on the next call.
func (e *Engine) Tick(dt float64) *render.Frame {
	e.star.Advance(dt)
	return e.pipeline.Compose()
}

// Run ticks the simulation at the fixed rate and flushes each frame
// to sink until stop closes or the sink fails.
func (e *Engine) Run(stop <-chan struct{}, sink render.Sink) error {
	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			if err := sink.Flush(e.Tick(constants.TickSeconds)); err != nil {
				return err
			}
		}
	}
}
