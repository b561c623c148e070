package sim

import (
	"math"
	"math/rand/v2"
	"testing"
)

const testDt = 1.0 / 30.0

func newTestStar() *Star {
	rng := rand.New(rand.NewPCG(1, 2))
	return NewStar(NewParticleStore(rng))
}

// advanceUntil ticks the star until it reaches the target phase,
// returning the number of ticks taken.
func advanceUntil(t *testing.T, s *Star, target Phase, maxTicks int) int {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if s.Phase == target {
			return i
		}
		s.Advance(testDt)
	}
	t.Fatalf("Expected phase %v within %d ticks, still in %v", target, maxTicks, s.Phase)
	return 0
}

func TestGiantPulsation(t *testing.T) {
	s := newTestStar()
	s.Advance(testDt)

	want := 9.0 + math.Sin(0.1)*1.5
	if math.Abs(s.Radius-want) > 1e-9 {
		t.Errorf("Expected radius %.9f after one tick, got %.9f", want, s.Radius)
	}
	if s.Phase != PhaseGiant {
		t.Errorf("Expected phase to remain %v, got %v", PhaseGiant, s.Phase)
	}
}

func TestGiantEntersCollapse(t *testing.T) {
	s := newTestStar()

	ticks := advanceUntil(t, s, PhaseCollapse, 300)
	if elapsed := float64(ticks) * testDt; elapsed <= 5.0 {
		t.Errorf("Expected collapse only after 5s in giant phase, got %.3fs", elapsed)
	}
	if s.Velocity != 0 {
		t.Errorf("Expected velocity reset to 0 on collapse entry, got %f", s.Velocity)
	}
	if s.PhaseTime != 0 {
		t.Errorf("Expected phase time reset to 0, got %f", s.PhaseTime)
	}
}

func TestCollapseContraction(t *testing.T) {
	s := newTestStar()
	advanceUntil(t, s, PhaseCollapse, 300)

	prev := s.Radius
	for i := 0; i < 1000 && s.Phase == PhaseCollapse; i++ {
		s.Advance(testDt)
		if s.Phase != PhaseCollapse {
			break
		}
		if s.Radius >= prev {
			t.Fatalf("Expected radius to shrink every collapse tick, %f -> %f", prev, s.Radius)
		}
		prev = s.Radius
	}

	if s.Phase != PhaseBounce {
		t.Fatalf("Expected collapse to end in %v, got %v", PhaseBounce, s.Phase)
	}
	if s.Radius >= 3.0 {
		t.Errorf("Expected bounce entry on the first tick with radius below 3, got %f", s.Radius)
	}
	if s.CoreRadius != 2.0 {
		t.Errorf("Expected core radius exactly 2.0 at bounce, got %f", s.CoreRadius)
	}
}

func TestBounceSpawnsEjecta(t *testing.T) {
	s := newTestStar()
	advanceUntil(t, s, PhaseBounce, 400)

	if s.Ejecta.Len() != 0 {
		t.Fatalf("Expected no ejecta before the explosion, got %d", s.Ejecta.Len())
	}

	ticks := advanceUntil(t, s, PhaseExplosion, 100)
	if elapsed := float64(ticks) * testDt; elapsed <= 0.8 {
		t.Errorf("Expected bounce to last 0.8s, got %.3fs", elapsed)
	}
	if s.Ejecta.Len() != 450 {
		t.Errorf("Expected 450 ejecta at explosion onset, got %d", s.Ejecta.Len())
	}
	if s.ExplosionRadius != 3.0 {
		t.Errorf("Expected explosion radius seeded to 3.0, got %f", s.ExplosionRadius)
	}
}

func TestExplosionReachesNebula(t *testing.T) {
	s := newTestStar()
	advanceUntil(t, s, PhaseExplosion, 500)
	advanceUntil(t, s, PhaseNebula, 100)

	if s.ExplosionRadius <= 32.0 {
		t.Errorf("Expected nebula entry only past radius 32, got %f", s.ExplosionRadius)
	}
}

func TestFullCycle(t *testing.T) {
	s := newTestStar()

	order := []Phase{PhaseCollapse, PhaseBounce, PhaseExplosion, PhaseNebula, PhaseGiant}
	for _, want := range order {
		advanceUntil(t, s, want, 2000)
	}

	if s.Radius != 9.0 {
		t.Errorf("Expected radius restored to exactly 9.0 on the new cycle, got %f", s.Radius)
	}
	if s.PhaseTime != 0 {
		t.Errorf("Expected phase time reset to exactly 0, got %f", s.PhaseTime)
	}
	if s.CoreRadius != 2.0 {
		t.Errorf("Expected remnant core to persist across cycles, got %f", s.CoreRadius)
	}
}

func TestTransitionHookOrder(t *testing.T) {
	s := newTestStar()

	var seen []Phase
	s.TransitionHook = func(from, to Phase) {
		seen = append(seen, to)
	}

	for i := 0; i < 600; i++ {
		s.Advance(testDt)
	}

	want := []Phase{PhaseCollapse, PhaseBounce, PhaseExplosion, PhaseNebula, PhaseGiant}
	if len(seen) < len(want) {
		t.Fatalf("Expected at least %d transitions in 20s, got %d", len(want), len(seen))
	}
	for i, p := range want {
		if seen[i] != p {
			t.Errorf("Transition %d: expected %v, got %v", i, p, seen[i])
		}
	}
}

func TestHookObservesSideEffects(t *testing.T) {
	s := newTestStar()

	checked := false
	s.TransitionHook = func(from, to Phase) {
		if to != PhaseExplosion {
			return
		}
		checked = true
		if s.Ejecta.Len() != 450 {
			t.Errorf("Expected spawn before the explosion hook fires, got %d ejecta", s.Ejecta.Len())
		}
		if s.ExplosionRadius != 3.0 {
			t.Errorf("Expected explosion radius seeded before the hook fires, got %f", s.ExplosionRadius)
		}
	}

	advanceUntil(t, s, PhaseExplosion, 600)
	if !checked {
		t.Fatal("Expected the explosion hook to fire")
	}
}

func TestPhaseNames(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseGiant, "GIANT"},
		{PhaseCollapse, "COLLAPSE"},
		{PhaseBounce, "BOUNCE"},
		{PhaseExplosion, "EXPLOSION"},
		{PhaseNebula, "NEBULA"},
		{Phase(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
