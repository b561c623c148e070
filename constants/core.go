package constants

import "time"

// Simulation Timing
const (
	// TickInterval is the fixed frame pacing interval (~30 FPS)
	TickInterval = time.Second / 30

	// TickSeconds is the simulation timestep matching TickInterval
	TickSeconds = 1.0 / 30.0
)
