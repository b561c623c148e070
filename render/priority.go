package render

// RenderPriority determines compose order. Lower values render first,
// so higher priorities overwrite them.
type RenderPriority int

const (
	PriorityBase    RenderPriority = 100 // phase body and shells
	PriorityRemnant RenderPriority = 200 // exposed core over any phase
	PriorityEjecta  RenderPriority = 300 // particles on top of everything
)
