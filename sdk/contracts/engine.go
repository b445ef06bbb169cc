package contracts

// Renderer is the rendering engine owned by a synth driver: it holds all
// per-channel state (presets, sounding notes, pitch wheel, controllers) and
// turns it into audio. Implementations are not safe for concurrent use; the
// driver serializes every call behind its own lock.
type Renderer interface {
	// SetPreset selects the channel's active preset. drums marks the
	// General MIDI percussion channel so the engine picks the drum bank.
	SetPreset(channel, preset int, drums bool)

	// NoteOn starts sounding key on the channel. velocity is normalized
	// to [0, 1].
	NoteOn(channel, key int, velocity float32)

	// NoteOff stops sounding key on the channel.
	NoteOff(channel, key int)

	// SetPitchWheel sets the channel pitch wheel to a 14-bit value
	// (0-16383, center 8192).
	SetPitchWheel(channel, value int)

	// SetController applies a raw MIDI controller value to the channel.
	SetController(channel, controller, value int)

	// SetMasterVolume scales the engine's overall output gain, 0 to 1.
	SetMasterVolume(volume float32)

	// Render synthesizes len(buf)/2 interleaved stereo frames of the
	// current channel state into buf.
	Render(buf []float32)

	// Close releases the loaded sound bank.
	Close() error
}
