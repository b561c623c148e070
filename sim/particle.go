package sim

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/supernova/constants"
)

// Particle is one fragment of stellar ejecta in grid space. Position
// and velocity are continuous; the rasterizer floors to cells.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining, inert once <= 0
}

// Alive reports whether the particle still moves and draws.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// ParticleStore holds every ejecta fragment in a fixed array. Spawn
// bulk-initializes all slots; expired particles are skipped in place
// until the next spawn overwrites them. No per-particle allocation.
type ParticleStore struct {
	particles [constants.MaxParticles]Particle
	populated int
	rng       *rand.Rand
}

// NewParticleStore creates an empty store drawing from rng.
func NewParticleStore(rng *rand.Rand) *ParticleStore {
	return &ParticleStore{rng: rng}
}

// Spawn reinitializes every slot as a radial burst from the origin.
// Launch angles are uniform, speeds are integer-valued, and vertical
// velocity is squashed to match the cell aspect ratio.
func (ps *ParticleStore) Spawn(originX, originY float64) {
	for i := range ps.particles {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := float64(constants.ParticleSpeedMin + ps.rng.IntN(constants.ParticleSpeedSpan))
		ps.particles[i] = Particle{
			X:    originX,
			Y:    originY,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed * constants.ParticleVerticalSquash,
			Life: constants.ParticleLifeMin + ps.rng.Float64()*constants.ParticleLifeSpan,
		}
	}
	ps.populated = len(ps.particles)
}

// Update advances live particles by one Euler step, no damping, no
// gravity. Dead slots are skipped, not reset.
func (ps *ParticleStore) Update(dt float64) {
	for i := range ps.particles[:ps.populated] {
		p := &ps.particles[i]
		if !p.Alive() {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
	}
}

// Particles exposes the populated slots for rasterization.
func (ps *ParticleStore) Particles() []Particle {
	return ps.particles[:ps.populated]
}

// Len reports how many slots a spawn has populated, zero before the
// first explosion.
func (ps *ParticleStore) Len() int {
	return ps.populated
}

// AliveCount reports how many particles still have life remaining.
func (ps *ParticleStore) AliveCount() int {
	n := 0
	for i := range ps.particles[:ps.populated] {
		if ps.particles[i].Alive() {
			n++
		}
	}
	return n
}
