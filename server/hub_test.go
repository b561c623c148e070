package server

import (
	"context"
	"errors"
	"testing"

	"github.com/lixenwraith/supernova/constants"
	"github.com/lixenwraith/supernova/render"
)

func testFrame() *render.Frame {
	f := render.NewFrame()
	f.Set(45, 16, '#', render.StyleBlank)
	return f
}

func TestFlushSerializesFrame(t *testing.T) {
	hub := NewHub()

	if err := hub.Flush(testFrame()); err != nil {
		t.Fatalf("Expected flush to succeed, got %v", err)
	}

	data := <-hub.frames
	wantLen := (constants.GridWidth + 1) * constants.GridHeight
	if len(data) != wantLen {
		t.Fatalf("Expected %d byte payload, got %d", wantLen, len(data))
	}
	if data[16*(constants.GridWidth+1)+45] != '#' {
		t.Error("Expected the star cell in the payload")
	}
	if data[len(data)-1] != '\n' {
		t.Error("Expected the payload to end with a newline")
	}
}

func TestFlushNeverBlocks(t *testing.T) {
	hub := NewHub()

	// Nothing drains the queue here, so this overfills it on purpose
	for i := 0; i < frameBuffer+3; i++ {
		if err := hub.Flush(testFrame()); err != nil {
			t.Fatalf("Expected flush %d to succeed, got %v", i, err)
		}
	}
}

func TestHubBroadcastsToViewers(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- hub.Run(ctx) }()

	fake := newFakeTransport()
	sess := newSession(fake)
	hub.register <- sess

	sessCtx, stopSess := context.WithCancel(context.Background())
	defer stopSess()
	go sess.run(sessCtx)

	// Registration and the first frame race through separate channels,
	// so keep flushing until one lands
	waitFor(t, "the frame to reach the viewer", func() bool {
		hub.Flush(testFrame())
		return fake.writeCount() >= 1
	})

	payload := fake.lastWrite()
	if payload[16*(constants.GridWidth+1)+45] != '#' {
		t.Error("Expected the star cell in the broadcast payload")
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled from Run, got %v", err)
	}
	waitFor(t, "the session to be closed on shutdown", fake.closed.Load)
}

func TestHubUnregisterClosesSession(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	fake := newFakeTransport()
	sess := newSession(fake)
	hub.register <- sess
	hub.unregister <- sess

	waitFor(t, "the session to be closed", fake.closed.Load)
}

func TestHubSignalsDoneAfterRun(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- hub.Run(ctx) }()

	cancel()
	<-errCh

	select {
	case <-hub.done:
	default:
		t.Error("Expected the done channel closed after Run returns")
	}
}
