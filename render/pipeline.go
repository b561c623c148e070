package render

type rendererEntry struct {
	renderer Renderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Pipeline coordinates frame composition: renderers registered at
// ascending priorities draw into one shared frame, later writes
// overwriting earlier ones. That ordering is the whole overlap rule.
type Pipeline struct {
	frame     *Frame
	renderers []rendererEntry
	regCount  int
}

// NewPipeline creates a pipeline with its backing frame.
func NewPipeline() *Pipeline {
	return &Pipeline{
		frame:     NewFrame(),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted
// order via insertion sort.
func (p *Pipeline) Register(r Renderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    p.regCount,
	}
	p.regCount++

	// Insertion sort: find position and insert
	pos := len(p.renderers)
	for i, e := range p.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	p.renderers = append(p.renderers, rendererEntry{})
	copy(p.renderers[pos+1:], p.renderers[pos:])
	p.renderers[pos] = entry
}

// Compose executes the pipeline: clear, then render all in priority
// order. The returned frame is reused between calls.
func (p *Pipeline) Compose() *Frame {
	p.frame.Clear()
	for _, entry := range p.renderers {
		entry.renderer.Render(p.frame)
	}
	return p.frame
}
