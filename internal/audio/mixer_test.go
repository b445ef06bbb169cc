package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestHeadlessMixerPull(t *testing.T) {
	m := NewHeadlessMixer()
	err := m.PlaySynth(func(buf []float32, frames int, volume float32) {
		for i := range buf {
			buf[i] = float32(i)
		}
	})
	if err != nil {
		t.Fatalf("PlaySynth: %v", err)
	}

	// Inactive mixers return silence.
	for i, s := range m.Pull(4, 1.0) {
		if s != 0 {
			t.Fatalf("inactive pull sample %d = %v, want 0", i, s)
		}
	}

	m.SetActive(true)
	buf := m.Pull(4, 1.0)
	if len(buf) != 8 {
		t.Fatalf("got %d samples, want 8", len(buf))
	}
	for i, s := range buf {
		if s != float32(i) {
			t.Errorf("sample %d = %v, want %v", i, s, float32(i))
		}
	}
}

func TestHeadlessMixerSingleStream(t *testing.T) {
	m := NewHeadlessMixer()
	render := func(buf []float32, frames int, volume float32) {}
	if err := m.PlaySynth(render); err != nil {
		t.Fatalf("PlaySynth: %v", err)
	}
	if err := m.PlaySynth(render); err == nil {
		t.Error("second PlaySynth succeeded, want ErrSynthRegistered")
	}
}

func TestOtoMixerReadEncodesFloat32LE(t *testing.T) {
	// Read never touches the audio device, so a zero-value mixer with a
	// render callback is enough to test the pull-and-encode path.
	m := &OtoMixer{}
	m.render = func(buf []float32, frames int, volume float32) {
		if volume != 1.0 {
			t.Errorf("render volume = %v, want 1.0", volume)
		}
		for i := range buf {
			buf[i] = 0.5
		}
	}
	m.active.Store(true)

	p := make([]byte, 4*8) // 4 stereo frames
	n, err := m.Read(p)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != len(p) {
		t.Fatalf("Read returned %d bytes, want %d", n, len(p))
	}
	for i := 0; i < len(p); i += 4 {
		bits := binary.LittleEndian.Uint32(p[i:])
		if got := math.Float32frombits(bits); got != 0.5 {
			t.Fatalf("sample at offset %d = %v, want 0.5", i, got)
		}
	}
}

func TestOtoMixerReadSilentWhenInactive(t *testing.T) {
	m := &OtoMixer{}
	m.render = func(buf []float32, frames int, volume float32) {
		for i := range buf {
			buf[i] = 1
		}
	}

	p := make([]byte, 16)
	if _, err := m.Read(p); err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i, b := range p {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want silence", i, b)
		}
	}
}
