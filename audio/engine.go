// Package audio plays short sine cues on phase transitions. A speaker
// that fails to open drops the engine into silent mode instead of
// aborting the animation.
package audio

import (
	"fmt"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/supernova/constants"
)

// Engine drives the system speaker
type Engine struct {
	sampleRate beep.SampleRate

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// NewEngine creates a stopped engine
func NewEngine(muted bool) *Engine {
	e := &Engine{
		sampleRate: beep.SampleRate(constants.AudioSampleRate),
	}
	e.muted.Store(muted)
	return e
}

// Start opens the speaker. A speaker that cannot be opened switches
// the engine to silent mode, which is not an error.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	if err := speaker.Init(e.sampleRate, e.sampleRate.N(constants.AudioBufferLength)); err != nil {
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}

	e.running.Store(true)
	return nil
}

// Play queues a cue for playback, returning true if it was queued
func (e *Engine) Play(c Cue) bool {
	if !e.running.Load() || e.muted.Load() || e.silentMode.Load() {
		return false
	}

	freq, length := cueSpec(c)
	if length <= 0 {
		return false
	}

	sine, err := generators.SineTone(e.sampleRate, freq)
	if err != nil {
		return false
	}

	speaker.Play(beep.Take(e.sampleRate.N(length), sine))
	return true
}

// ToggleMute toggles mute state, returns true if sound is now on
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true if running, unmuted, and not silent
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

// Stop closes the speaker
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	if !e.silentMode.Load() {
		speaker.Close()
	}
}
