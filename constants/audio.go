package constants

import "time"

// Speaker Configuration
const (
	AudioSampleRate = 44100

	// AudioBufferLength sizes the speaker buffer; shorter is lower latency
	AudioBufferLength = time.Second / 10
)

// Phase Cue Tones
// Each phase entry is announced with a short sine tone
const (
	CueGiantFreq     = 220.0
	CueCollapseFreq  = 110.0
	CueBounceFreq    = 440.0
	CueExplosionFreq = 55.0 // low rumble
	CueNebulaFreq    = 330.0

	CueDuration          = 120 * time.Millisecond
	CueExplosionDuration = 350 * time.Millisecond
)
