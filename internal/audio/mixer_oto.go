package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
	"github.com/gosynth/midisynth/sdk/contracts"
)

const (
	// mixerChannels is the output channel layout: interleaved stereo.
	mixerChannels = 2
	// bytesPerSample is the size of one float32 LE sample on the wire.
	bytesPerSample = 4
	// defaultBufferFrames pre-sizes the pull buffer for typical oto reads.
	defaultBufferFrames = 4096
)

// ErrSynthRegistered is returned when a second synth stream is registered.
var ErrSynthRegistered = errors.New("mixer already has a synth stream")

// OtoMixer pushes samples pulled from a registered render callback into an
// oto playback device. The device drives the cadence: oto calls Read on its
// own goroutine whenever it needs more audio.
type OtoMixer struct {
	ctx       *oto.Context
	player    *oto.Player
	render    contracts.RenderFunc
	sampleBuf []float32
	active    atomic.Bool
	mu        sync.Mutex // guards player setup and teardown
}

// NewOtoMixer opens the audio device for float32 interleaved stereo at the
// given sample rate and waits for it to become ready.
func NewOtoMixer(sampleRate int) (*OtoMixer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: mixerChannels,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create audio context: %w", err)
	}
	<-ready

	return &OtoMixer{ctx: ctx}, nil
}

// PlaySynth registers the render callback and starts playback. The mixer
// accepts a single synth stream.
func (m *OtoMixer) PlaySynth(render contracts.RenderFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.player != nil {
		return ErrSynthRegistered
	}
	m.render = render
	m.sampleBuf = make([]float32, defaultBufferFrames*mixerChannels)
	m.player = m.ctx.NewPlayer(m)
	m.player.Play()
	return nil
}

// SetActive toggles whether Read pulls from the render callback. While
// inactive the mixer emits silence so the device keeps its timing.
func (m *OtoMixer) SetActive(active bool) {
	m.active.Store(active)
}

// Read fills p with float32 LE samples pulled from the render callback.
// Called by oto on its playback goroutine.
func (m *OtoMixer) Read(p []byte) (int, error) {
	frames := len(p) / (bytesPerSample * mixerChannels)
	if frames == 0 {
		return 0, nil
	}

	samples := frames * mixerChannels
	if cap(m.sampleBuf) < samples {
		m.sampleBuf = make([]float32, samples)
	}
	buf := m.sampleBuf[:samples]

	if m.active.Load() && m.render != nil {
		m.render(buf, frames, 1.0)
	} else {
		for i := range buf {
			buf[i] = 0
		}
	}

	for i, s := range buf {
		binary.LittleEndian.PutUint32(p[bytesPerSample*i:], math.Float32bits(s))
	}
	return samples * bytesPerSample, nil
}

// Close stops playback and releases the player. The oto context itself has
// no close operation; it lives until the process exits.
func (m *OtoMixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active.Store(false)
	if m.player != nil {
		if err := m.player.Close(); err != nil {
			return fmt.Errorf("cannot close audio player: %w", err)
		}
		m.player = nil
	}
	return nil
}
