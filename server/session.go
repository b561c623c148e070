package server

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrBackpressure signals a viewer that cannot keep up with the frame
// rate
var ErrBackpressure = errors.New("write channel is full, apply backpressure")

const (
	sessionWriteBuffer = 16
	closeNormal        = 1000
)

// session is one connected viewer
type session struct {
	id      string
	conn    transport
	writeCh chan []byte
	closed  atomic.Bool
}

func newSession(conn transport) *session {
	return &session{
		id:      uuid.NewString(),
		conn:    conn,
		writeCh: make(chan []byte, sessionWriteBuffer),
	}
}

// send queues a frame without blocking the broadcaster
func (s *session) send(data []byte) error {
	select {
	case s.writeCh <- data:
		return nil
	default:
		return ErrBackpressure
	}
}

// run pumps queued frames to the wire and drains inbound traffic so
// peer disconnects surface promptly. Returns when the context ends or
// the connection drops.
func (s *session) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case data := <-s.writeCh:
				if err := s.conn.Write(ctx, data); err != nil {
					return err
				}
			}
		}
	})

	// Viewers are watch-only, anything they send is discarded
	g.Go(func() error {
		for {
			if _, err := s.conn.Read(ctx); err != nil {
				return err
			}
		}
	})

	return g.Wait()
}

// close shuts the connection once, later calls are no-ops
func (s *session) close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.conn.Close(closeNormal, "stream ended")
}
