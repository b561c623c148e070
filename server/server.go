// Package server streams the animation to websocket viewers while the
// terminal shows it locally.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"
)

const shutdownGracePeriod = 3 * time.Second

// Server exposes the frame stream over HTTP: /watch upgrades to a
// websocket, /healthz answers liveness probes.
type Server struct {
	http *http.Server
	hub  *Hub
}

func New(addr string, hub *Hub) *Server {
	s := &Server{hub: hub}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/watch", s.handleWatch)

	s.http = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Run serves until ctx ends, then shuts the listener down gracefully
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.hub.Run(ctx)
	})

	g.Go(func() error {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleWatch upgrades the request and parks it in the hub until the
// viewer leaves or the stream ends
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("websocket accept failed: %v", err)
		return
	}

	sess := newSession(&wsTransport{conn: conn})

	select {
	case s.hub.register <- sess:
	case <-s.hub.done:
		sess.close()
		return
	}

	_ = sess.run(r.Context())

	select {
	case s.hub.unregister <- sess:
	case <-s.hub.done:
		sess.close()
	}
}
