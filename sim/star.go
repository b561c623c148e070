package sim

import (
	"math"

	"github.com/lixenwraith/supernova/constants"
)

// Star is the single simulated object: a flat record holding whatever
// the current phase needs. Phases never overlap in time, so radius,
// explosion radius, and contraction velocity coexist without a union.
type Star struct {
	Phase           Phase
	Radius          float64 // envelope, meaningful in giant/collapse/bounce
	CoreRadius      float64 // 0 until the bounce exposes the remnant
	ExplosionRadius float64 // shock front, meaningful from explosion onward
	Velocity        float64 // contraction speed during collapse
	PhaseTime       float64 // seconds since entering the current phase

	Ejecta *ParticleStore

	// TransitionHook, when set, runs after a phase change and its side
	// effects complete. Used for audio cues and logging.
	TransitionHook func(from, to Phase)
}

// NewStar creates a star at the start of its giant phase, owning the
// given ejecta store.
func NewStar(ejecta *ParticleStore) *Star {
	return &Star{
		Phase:  PhaseGiant,
		Radius: constants.GiantBaseRadius,
		Ejecta: ejecta,
	}
}

// Advance steps the simulation by dt seconds: accumulate phase time,
// apply the phase's numeric update, then check its single transition
// condition. No phase is ever skipped.
func (s *Star) Advance(dt float64) {
	s.PhaseTime += dt

	switch s.Phase {
	case PhaseGiant:
		s.Radius = constants.GiantBaseRadius +
			math.Sin(s.PhaseTime*constants.GiantPulseRate)*constants.GiantPulseAmplitude
		if s.PhaseTime > constants.GiantDuration {
			s.Velocity = 0
			s.transition(PhaseCollapse)
		}

	case PhaseCollapse:
		s.Velocity += constants.CollapseAcceleration * dt
		s.Radius -= s.Velocity * dt
		if s.Radius < constants.CollapseCoreLimit {
			s.CoreRadius = constants.RemnantCoreRadius
			s.transition(PhaseBounce)
		}

	case PhaseBounce:
		s.Radius += constants.BounceExpansionRate * dt
		if s.PhaseTime > constants.BounceDuration {
			s.ExplosionRadius = constants.ShockSeedRadius
			s.Ejecta.Spawn(constants.GridCenterX, constants.GridCenterY)
			s.transition(PhaseExplosion)
		}

	case PhaseExplosion:
		s.ExplosionRadius += constants.ShockExpansionRate * dt
		s.Ejecta.Update(dt)
		if s.ExplosionRadius > constants.ShockMaxRadius {
			s.transition(PhaseNebula)
		}

	case PhaseNebula:
		s.ExplosionRadius += constants.NebulaDriftRate * dt
		s.Ejecta.Update(dt)
		if s.ExplosionRadius > constants.NebulaMaxRadius {
			s.Radius = constants.GiantBaseRadius
			s.transition(PhaseGiant)
		}
	}
}

// transition switches phase and resets the phase clock. CoreRadius and
// ExplosionRadius deliberately survive the NEBULA->GIANT restart, so
// the remnant core stays visible through all later cycles.
func (s *Star) transition(next Phase) {
	from := s.Phase
	s.Phase = next
	s.PhaseTime = 0
	if s.TransitionHook != nil {
		s.TransitionHook(from, next)
	}
}
