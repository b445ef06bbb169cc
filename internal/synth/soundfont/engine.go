package soundfont

import (
	"fmt"
	"os"

	"github.com/ezmidi/go-meltysynth/meltysynth"
	"github.com/gosynth/midisynth/sdk/contracts"
)

const (
	// renderBlockFrames is the engine's internal synthesis block size.
	renderBlockFrames = 512
	// maxPolyphony bounds the number of simultaneously sounding voices.
	maxPolyphony = 64
	// scratchFrames sizes the deinterleave scratch buffers so steady-state
	// render pulls never allocate. Grown on demand if a mixer asks for more.
	scratchFrames = 4096
)

// sf2Engine adapts a meltysynth synthesizer to the Renderer contract. The
// synthesizer owns all per-channel state; this type only translates calls
// and interleaves the split-channel output.
type sf2Engine struct {
	synth *meltysynth.Synthesizer
	left  []float32
	right []float32
}

// openEngine loads the bank at path and configures a synthesizer for
// stereo output at sampleRate. Runs once, single-threaded, during driver
// initialization.
func openEngine(path string, sampleRate int) (contracts.Renderer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bank, err := meltysynth.NewSoundFont(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse sound bank %s: %w", path, err)
	}

	settings := &meltysynth.SynthesizerSettings{
		SampleRate:            int32(sampleRate),
		BlockSize:             renderBlockFrames,
		MaximumPolyphony:      maxPolyphony,
		EnableReverbAndChorus: true,
	}
	synth, err := meltysynth.NewSynthesizer(bank, settings)
	if err != nil {
		return nil, fmt.Errorf("cannot create synthesizer: %w", err)
	}

	return &sf2Engine{
		synth: synth,
		left:  make([]float32, scratchFrames),
		right: make([]float32, scratchFrames),
	}, nil
}

// SetPreset forwards a program change. The synthesizer pins channel 9 to
// the percussion bank on its own, which matches the drums flag the
// translator derives; the flag needs no separate plumbing here.
func (e *sf2Engine) SetPreset(channel, preset int, drums bool) {
	e.synth.ProcessMidiMessage(int32(channel), int32(contracts.ProgramChange), int32(preset), 0)
}

func (e *sf2Engine) NoteOn(channel, key int, velocity float32) {
	e.synth.NoteOn(int32(channel), int32(key), midiVelocity(velocity))
}

func (e *sf2Engine) NoteOff(channel, key int) {
	e.synth.NoteOff(int32(channel), int32(key))
}

func (e *sf2Engine) SetPitchWheel(channel, value int) {
	e.synth.ProcessMidiMessage(int32(channel), int32(contracts.PitchBend),
		int32(value&0x7F), int32(value>>7))
}

func (e *sf2Engine) SetController(channel, controller, value int) {
	e.synth.ProcessMidiMessage(int32(channel), int32(contracts.ControlChange),
		int32(controller), int32(value))
}

func (e *sf2Engine) SetMasterVolume(volume float32) {
	e.synth.MasterVolume = volume
}

// Render synthesizes len(buf)/2 interleaved stereo frames.
func (e *sf2Engine) Render(buf []float32) {
	frames := len(buf) / 2
	if cap(e.left) < frames {
		e.left = make([]float32, frames)
		e.right = make([]float32, frames)
	}
	left := e.left[:frames]
	right := e.right[:frames]
	e.synth.Render(left, right)
	interleave(buf, left, right)
}

// Close silences all voices and drops the synthesizer. The bank itself is
// plain memory; there is no device handle to release.
func (e *sf2Engine) Close() error {
	e.synth.NoteOffAll(true)
	e.synth = nil
	return nil
}

// midiVelocity converts a normalized velocity back to the 0-127 range the
// synthesizer expects.
func midiVelocity(velocity float32) int32 {
	v := int32(velocity*127 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 127 {
		v = 127
	}
	return v
}

// interleave writes left/right sample pairs into dst as LRLR frames.
func interleave(dst, left, right []float32) {
	for i := range left {
		dst[2*i] = left[i]
		dst[2*i+1] = right[i]
	}
}
