package constants

// Ejecta Pool
const (
	// MaxParticles is the fixed slot count of the ejecta store; every
	// spawn reinitializes exactly this many particles
	MaxParticles = 450
)

// Ejecta Spawn Distributions
const (
	// ParticleSpeedMin and ParticleSpeedSpan bound the integer launch
	// speed: speed = SpeedMin + [0, Span) in cells per second
	ParticleSpeedMin  = 10
	ParticleSpeedSpan = 40

	// ParticleVerticalSquash compresses vertical velocity to compensate
	// for the character cell aspect ratio
	ParticleVerticalSquash = 0.55

	// ParticleLifeMin and ParticleLifeSpan bound the lifetime draw:
	// life = LifeMin + [0, Span) in seconds
	ParticleLifeMin  = 2.5
	ParticleLifeSpan = 1.5
)
