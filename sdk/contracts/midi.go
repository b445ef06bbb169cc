package contracts

// Event is a raw MIDI message handed to the driver by the caller.
// The driver decodes it within the call and must not retain Data afterwards;
// callers are free to reuse the backing slice.
type Event struct {
	Timestamp uint64 // Timestamp indicates the time the event occurred, in nanoseconds.
	Data      []byte // Data holds the status byte followed by the data bytes (sysex may be longer).
}

// MIDICommand identifies a MIDI channel message kind, taken from the
// high nibble of the status byte.
type MIDICommand byte

const (
	// NoteOff stops a sounding note (0x80).
	NoteOff MIDICommand = 0x80
	// NoteOn starts a note at a given velocity (0x90).
	NoteOn MIDICommand = 0x90
	// KeyPressure is polyphonic aftertouch (0xA0).
	KeyPressure MIDICommand = 0xA0
	// ControlChange carries a controller number and value (0xB0).
	ControlChange MIDICommand = 0xB0
	// ProgramChange selects the channel's preset (0xC0).
	ProgramChange MIDICommand = 0xC0
	// ChannelPressure is channel aftertouch (0xD0).
	ChannelPressure MIDICommand = 0xD0
	// PitchBend sets the channel pitch wheel from a 14-bit value (0xE0).
	PitchBend MIDICommand = 0xE0
	// SystemExclusive carries vendor-defined payloads (0xF0).
	SystemExclusive MIDICommand = 0xF0
)

// Command extracts the message kind from the event's status byte.
func (e Event) Command() MIDICommand {
	if len(e.Data) == 0 {
		return 0
	}
	return MIDICommand(e.Data[0] & 0xF0)
}

// Channel extracts the channel number (0-15) from the event's status byte.
func (e Event) Channel() int {
	if len(e.Data) == 0 {
		return 0
	}
	return int(e.Data[0] & 0x0F)
}
