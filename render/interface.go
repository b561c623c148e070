package render

// Renderer is implemented by every visual element of the simulation.
type Renderer interface {
	Render(f *Frame)
}

// Sink receives composed frames for display or transport.
type Sink interface {
	Flush(f *Frame) error
}

// MultiSink fans each frame out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Flush(f *Frame) error {
	for _, s := range m {
		if err := s.Flush(f); err != nil {
			return err
		}
	}
	return nil
}
