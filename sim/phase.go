package sim

// Phase identifies the stage of the stellar life cycle. The machine is
// cyclic: PhaseNebula transitions back to PhaseGiant.
type Phase uint8

const (
	PhaseGiant Phase = iota
	PhaseCollapse
	PhaseBounce
	PhaseExplosion
	PhaseNebula
)

var phaseNames = [...]string{"GIANT", "COLLAPSE", "BOUNCE", "EXPLOSION", "NEBULA"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "UNKNOWN"
}
