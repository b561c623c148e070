package constants

// Giant Phase: Envelope Pulsation
const (
	// GiantBaseRadius is the envelope radius around which the star pulses,
	// also restored when a new cycle begins
	GiantBaseRadius = 9.0

	GiantPulseAmplitude = 1.5
	GiantPulseRate      = 3.0

	// GiantDuration is how long the star stays stable before infall (seconds)
	GiantDuration = 5.0
)

// Collapse Phase: Gravitational Infall
const (
	// CollapseAcceleration is the contraction speed gain per second
	CollapseAcceleration = 40.0

	// CollapseCoreLimit is the radius at which infall rebounds off the core
	CollapseCoreLimit = 3.0
)

// Bounce Phase: Shock Formation
const (
	// RemnantCoreRadius is fixed the instant the core stiffens and never
	// changes again within a cycle
	RemnantCoreRadius = 2.0

	BounceExpansionRate = 25.0
	BounceDuration      = 0.8
)

// Explosion & Nebula Phases: Shock Propagation
const (
	ShockSeedRadius    = 3.0
	ShockExpansionRate = 30.0

	// ShockMaxRadius ends the explosion once the front clears the grid
	ShockMaxRadius = 32.0

	NebulaDriftRate = 6.0

	// NebulaMaxRadius ends the cycle once the remnant has fully dispersed
	NebulaMaxRadius = 42.0
)
