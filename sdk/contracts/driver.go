package contracts

// SynthDriver defines the operation table a synthesis backend exposes to its
// host. Backends render MIDI channel events into an audio stream; they never
// capture MIDI input, so the input-side operations are fixed no-ops kept for
// interface symmetry with bidirectional drivers.
type SynthDriver interface {
	// WriteEvent decodes a raw MIDI event and applies it to the synth state.
	// Events shorter than two bytes are rejected with no side effects;
	// well-formed events of an unrecognized kind succeed as no-ops.
	WriteEvent(event Event) error

	// StartStream drains events from the channel into WriteEvent on a
	// dedicated goroutine until the channel is closed.
	StartStream(events <-chan Event)

	// Read never yields an event; synthesis drivers have no input side.
	Read(event *Event) bool

	// ListInputs returns the available input devices, always none.
	ListInputs() ([]DeviceInfo, error)

	// ListOutputs returns the advisory output names the driver accepts.
	// The list is descriptive only; the backend has a single operating mode.
	ListOutputs() ([]DeviceInfo, error)

	// SetInput always fails; see Read.
	SetInput(name string) error

	// SetOutput always succeeds. The name is not validated against the
	// advisory list returned by ListOutputs.
	SetOutput(name string) error

	// Flush always succeeds; rendering has no internal queue to drain.
	Flush() error

	// Close releases the sound bank, the synth state and, when the driver
	// owns it, the mixer. Safe to call more than once.
	Close() error
}
