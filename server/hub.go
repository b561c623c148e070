package server

import (
	"bytes"
	"context"
	"log"

	"github.com/lixenwraith/supernova/constants"
	"github.com/lixenwraith/supernova/render"
)

const (
	registerBuffer = 8
	frameBuffer    = 4
)

// Hub fans rendered frames out to every connected viewer. It
// implements render.Sink, so it can sit next to the local display in
// a MultiSink.
type Hub struct {
	register   chan *session
	unregister chan *session
	frames     chan []byte
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *session, registerBuffer),
		unregister: make(chan *session, registerBuffer),
		frames:     make(chan []byte, frameBuffer),
		done:       make(chan struct{}),
	}
}

// Flush serializes one frame and hands it to the broadcast loop. A
// full queue drops the frame rather than stalling the animation.
func (h *Hub) Flush(f *render.Frame) error {
	var buf bytes.Buffer
	buf.Grow((constants.GridWidth + 1) * constants.GridHeight)
	if _, err := f.WriteTo(&buf); err != nil {
		return err
	}

	select {
	case h.frames <- buf.Bytes():
	default:
	}
	return nil
}

// Run owns the session table. It is the only goroutine that touches
// the map, so no lock is needed. Returns once ctx ends, after closing
// every session.
func (h *Hub) Run(ctx context.Context) error {
	sessions := make(map[string]*session)
	defer func() {
		for _, s := range sessions {
			s.close()
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case s := <-h.register:
			sessions[s.id] = s
			log.Printf("viewer %s connected (%d active)", s.id, len(sessions))

		case s := <-h.unregister:
			delete(sessions, s.id)
			s.close()
			log.Printf("viewer %s disconnected (%d active)", s.id, len(sessions))

		case data := <-h.frames:
			for _, s := range sessions {
				if err := s.send(data); err != nil {
					log.Printf("viewer %s lagging, frame dropped", s.id)
				}
			}
		}
	}
}
