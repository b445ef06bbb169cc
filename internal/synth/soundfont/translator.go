package soundfont

import (
	"bytes"

	"github.com/gosynth/midisynth/sdk/contracts"
)

// masterVolumeSysex is the only recognized sysex payload: a GM master-volume
// message carrying a 14-bit gain at offsets 5-6 of an 8-byte event.
var masterVolumeSysex = []byte{0x7F, 0x7F, 0x04, 0x01}

// WriteEvent decodes a raw MIDI event and applies it to the synth state
// under the lock. Events shorter than two bytes are rejected before any
// state is touched. Unrecognized kinds and unrecognized sysex payloads are
// deliberately treated as successful no-ops so unrelated MIDI traffic never
// aborts the session.
func (d *Driver) WriteEvent(event contracts.Event) error {
	if len(event.Data) < 2 {
		return ErrEventTooShort
	}

	channel := event.Channel()
	p1 := int(event.Data[1] & 0x7F)
	p2 := 0
	if len(event.Data) >= 3 {
		p2 = int(event.Data[2] & 0x7F)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}

	switch event.Command() {
	case contracts.ProgramChange:
		d.engine.SetPreset(channel, p1, channel == percussionChannel)
	case contracts.NoteOn:
		d.engine.NoteOn(channel, p1, float32(p2)/127.0)
	case contracts.NoteOff:
		d.engine.NoteOff(channel, p1)
	case contracts.PitchBend:
		d.engine.SetPitchWheel(channel, p2<<7|p1)
	case contracts.ControlChange:
		d.engine.SetController(channel, p1, p2)
	case contracts.SystemExclusive:
		d.applySysex(event.Data)
	}
	return nil
}

// applySysex handles the single recognized sysex message, the GM
// master-volume request. Anything else is ignored. Called with mu held.
func (d *Driver) applySysex(data []byte) {
	if len(data) != 8 || !bytes.Equal(data[1:5], masterVolumeSysex) {
		return
	}
	value := int(data[6]&0x7F)<<7 | int(data[5]&0x7F)
	d.engine.SetMasterVolume(float32(value) / 16383.0)
}

// Render fills buf with frames interleaved stereo frames from the current
// synth state. Runs on the mixer's audio goroutine; the lock is held only
// for the duration of one buffer. The volume argument is accepted per the
// mixer contract but not applied here: gain already reaches the engine
// through the master-volume sysex path.
func (d *Driver) Render(buf []float32, frames int, volume float32) {
	out := buf[:2*frames]

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		for i := range out {
			out[i] = 0
		}
		return
	}
	d.engine.Render(out)
}
