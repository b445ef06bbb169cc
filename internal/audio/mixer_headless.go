package audio

import (
	"sync/atomic"

	"github.com/gosynth/midisynth/sdk/contracts"
)

// HeadlessMixer is a mixer with no audio device behind it. It satisfies the
// Mixer contract for tests and for environments without audio hardware;
// callers drive the render callback explicitly through Pull.
type HeadlessMixer struct {
	render contracts.RenderFunc
	active atomic.Bool
	closed atomic.Bool
}

// NewHeadlessMixer creates a mixer that discards audio unless pulled.
func NewHeadlessMixer() *HeadlessMixer {
	return &HeadlessMixer{}
}

// PlaySynth registers the render callback.
func (m *HeadlessMixer) PlaySynth(render contracts.RenderFunc) error {
	if m.render != nil {
		return ErrSynthRegistered
	}
	m.render = render
	return nil
}

// SetActive toggles whether Pull invokes the render callback.
func (m *HeadlessMixer) SetActive(active bool) {
	m.active.Store(active)
}

// Active reports whether the mixer is currently pulling audio.
func (m *HeadlessMixer) Active() bool {
	return m.active.Load()
}

// Pull renders one buffer of frames interleaved stereo frames at the given
// volume and returns it. Inactive or unregistered mixers return silence.
func (m *HeadlessMixer) Pull(frames int, volume float32) []float32 {
	buf := make([]float32, frames*2)
	if m.active.Load() && m.render != nil {
		m.render(buf, frames, volume)
	}
	return buf
}

// Close marks the mixer closed; there is no device to release.
func (m *HeadlessMixer) Close() error {
	m.active.Store(false)
	m.closed.Store(true)
	return nil
}

// Closed reports whether Close has been called.
func (m *HeadlessMixer) Closed() bool {
	return m.closed.Load()
}
