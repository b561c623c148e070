package engine

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/supernova/constants"
	"github.com/lixenwraith/supernova/render"
	"github.com/lixenwraith/supernova/sim"
)

func newTestEngine() *Engine {
	return New(rand.New(rand.NewPCG(1, 2)))
}

func advanceTo(t *testing.T, eng *Engine, phase sim.Phase) *render.Frame {
	t.Helper()
	for i := 0; i < 1000; i++ {
		f := eng.Tick(constants.TickSeconds)
		if eng.Star().Phase == phase {
			return f
		}
	}
	t.Fatalf("Expected engine to reach %v within 1000 ticks", phase)
	return nil
}

func frameContains(f *render.Frame, r rune) bool {
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.Rune(x, y) == r {
				return true
			}
		}
	}
	return false
}

func TestTickComposesGiantFrame(t *testing.T) {
	eng := newTestEngine()

	f := eng.Tick(constants.TickSeconds)

	if f.Width() != constants.GridWidth || f.Height() != constants.GridHeight {
		t.Errorf("Expected %dx%d frame, got %dx%d",
			constants.GridWidth, constants.GridHeight, f.Width(), f.Height())
	}
	if got := f.Rune(45, 16); got != '#' {
		t.Errorf("Expected '#' at center of a fresh giant, got %q", got)
	}
	if got := f.Rune(0, 0); got != ' ' {
		t.Errorf("Expected blank corner, got %q", got)
	}
}

func TestExplosionFrameShowsEjecta(t *testing.T) {
	eng := newTestEngine()

	f := advanceTo(t, eng, sim.PhaseExplosion)

	if !frameContains(f, '+') {
		t.Error("Expected ejecta on the explosion entry frame")
	}
	if got := f.Rune(45, 16); got != '+' {
		t.Errorf("Expected fresh ejecta at the origin cell, got %q", got)
	}
}

func TestNebulaFrameShowsCore(t *testing.T) {
	eng := newTestEngine()

	f := advanceTo(t, eng, sim.PhaseNebula)

	// By nebula time the ejecta have flown well clear of the center,
	// leaving the remnant core visible
	if got := f.Rune(45, 16); got != 'O' {
		t.Errorf("Expected remnant core at center, got %q", got)
	}
}

func TestTickDrivesFullCycle(t *testing.T) {
	eng := newTestEngine()

	seen := make(map[sim.Phase]bool)
	var f *render.Frame
	cycled := false
	for i := 0; i < 1000; i++ {
		f = eng.Tick(constants.TickSeconds)
		seen[eng.Star().Phase] = true
		if len(seen) == 5 && eng.Star().Phase == sim.PhaseGiant {
			cycled = true
			break
		}
	}

	if !cycled {
		t.Fatal("Expected the engine to cycle back to GIANT within 1000 ticks")
	}
	for p := sim.PhaseGiant; p <= sim.PhaseNebula; p++ {
		if !seen[p] {
			t.Errorf("Expected phase %v during the cycle", p)
		}
	}
	// The remnant core outlives the cycle and shows through the new giant
	if got := f.Rune(45, 16); got != 'O' {
		t.Errorf("Expected persistent core at center after the cycle, got %q", got)
	}
}

type captureSink struct {
	frames int
	stop   chan struct{}
}

func (c *captureSink) Flush(f *render.Frame) error {
	c.frames++
	if c.frames == 3 {
		close(c.stop)
	}
	return nil
}

func TestRunStopsWhenAsked(t *testing.T) {
	eng := newTestEngine()
	stop := make(chan struct{})
	sink := &captureSink{stop: stop}

	if err := eng.Run(stop, sink); err != nil {
		t.Fatalf("Expected clean stop, got %v", err)
	}
	if sink.frames < 3 || sink.frames > 5 {
		t.Errorf("Expected about 3 frames before stopping, got %d", sink.frames)
	}
}

type failSink struct {
	err error
}

func (f *failSink) Flush(*render.Frame) error {
	return f.err
}

func TestRunPropagatesSinkError(t *testing.T) {
	eng := newTestEngine()
	stop := make(chan struct{})
	wantErr := errors.New("sink broke")

	if err := eng.Run(stop, &failSink{err: wantErr}); !errors.Is(err, wantErr) {
		t.Fatalf("Expected the sink error back, got %v", err)
	}
}
