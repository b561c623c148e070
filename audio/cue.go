package audio

import (
	"time"

	"github.com/lixenwraith/supernova/constants"
)

// Cue identifies one of the tones played on phase transitions
type Cue uint8

const (
	CueGiant Cue = iota
	CueCollapse
	CueBounce
	CueExplosion
	CueNebula
)

// cueSpec returns the tone frequency and length for a cue
func cueSpec(c Cue) (freq float64, length time.Duration) {
	switch c {
	case CueGiant:
		return constants.CueGiantFreq, constants.CueDuration
	case CueCollapse:
		return constants.CueCollapseFreq, constants.CueDuration
	case CueBounce:
		return constants.CueBounceFreq, constants.CueDuration
	case CueExplosion:
		return constants.CueExplosionFreq, constants.CueExplosionDuration
	case CueNebula:
		return constants.CueNebulaFreq, constants.CueDuration
	default:
		return 0, 0
	}
}
