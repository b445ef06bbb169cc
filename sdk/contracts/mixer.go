package contracts

// RenderFunc fills buf with frames interleaved stereo float32 frames
// (len(buf) >= 2*frames). It runs on the mixer's audio goroutine and must
// complete within the real-time budget implied by frames at the configured
// sample rate. The volume argument is part of the mixer calling convention
// but synthesis drivers do not apply it: gain is already folded into the
// synth state through the master-volume sysex path, and applying it here
// would double it.
type RenderFunc func(buf []float32, frames int, volume float32)

// Mixer is the audio-output subsystem a synth driver registers its render
// callback with. The mixer owns the cadence and the buffer size; the driver
// only fills buffers on demand.
type Mixer interface {
	// PlaySynth registers the render callback and starts pulling from it.
	// A mixer accepts a single synth stream.
	PlaySynth(render RenderFunc) error

	// SetActive toggles whether the mixer pulls from the render callback.
	// While inactive the mixer outputs silence.
	SetActive(active bool)

	// Close stops playback and releases the audio device.
	Close() error
}
