package soundfont

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gosynth/midisynth/internal/audio"
	"github.com/gosynth/midisynth/internal/logger"
	"github.com/gosynth/midisynth/sdk/contracts"
)

func TestNewDriverMissingBank(t *testing.T) {
	mixer := audio.NewHeadlessMixer()
	opts := &contracts.ClientOptions{
		Logger: logger.NewNopLogger(),
		Mixer:  mixer,
		SynthConfig: &contracts.SynthConfig{
			SampleRate: 44100,
			SystemDir:  t.TempDir(),
		},
	}
	if _, err := NewDriver(opts); err == nil {
		t.Fatal("NewDriver succeeded without a bank file")
	}
	if mixer.Active() {
		t.Error("mixer was activated despite failed initialization")
	}
}

func TestNewDriverUnparseableBank(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "GM.SF2")
	if err := os.WriteFile(path, []byte("not a soundfont"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := &contracts.ClientOptions{
		Logger: logger.NewNopLogger(),
		Mixer:  audio.NewHeadlessMixer(),
		SynthConfig: &contracts.SynthConfig{
			SampleRate: 44100,
			SystemDir:  dir,
		},
	}
	if _, err := NewDriver(opts); err == nil {
		t.Fatal("NewDriver succeeded with a corrupt bank file")
	}
}

func TestNewDriverActivatesMixer(t *testing.T) {
	_, _, mixer := newTestDriver(t)
	if !mixer.Active() {
		t.Error("driver did not activate the mixer")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	d, engine, mixer := newTestDriver(t)

	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if !engine.closed {
		t.Error("Close did not release the engine")
	}
	if mixer.Active() {
		t.Error("Close left the mixer active")
	}
	if !mixer.Closed() {
		t.Error("Close did not close the owned mixer")
	}
}

func TestCloseDoesNotCloseInjectedMixer(t *testing.T) {
	engine := newFakeRenderer()
	mixer := audio.NewHeadlessMixer()
	d, err := newDriver(engine, mixer, false, logger.NewNopLogger())
	if err != nil {
		t.Fatalf("newDriver: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if mixer.Closed() {
		t.Error("Close closed a mixer it does not own")
	}
}

func TestEventsAndRendersAfterClose(t *testing.T) {
	d, engine, _ := newTestDriver(t)
	engine.sample = 0.5
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := d.WriteEvent(event(0x90, 0x40, 0x7F)); err != nil {
		t.Errorf("WriteEvent after Close = %v, want nil", err)
	}
	if len(engine.calls) != 0 {
		t.Errorf("event reached the engine after Close: %v", engine.calls)
	}

	buf := make([]float32, 8)
	for i := range buf {
		buf[i] = 1
	}
	d.Render(buf, 4, 1.0)
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("sample %d = %v after Close, want silence", i, s)
		}
	}
	if engine.renders != 0 {
		t.Error("render reached the engine after Close")
	}
}

func TestListOutputs(t *testing.T) {
	d, _, _ := newTestDriver(t)
	outputs, err := d.ListOutputs()
	if err != nil {
		t.Fatalf("ListOutputs: %v", err)
	}
	want := []string{"SF2", "sf2", "GM", "gm"}
	if len(outputs) != len(want) {
		t.Fatalf("got %d outputs, want %d", len(outputs), len(want))
	}
	for i, name := range want {
		if outputs[i].Name != name {
			t.Errorf("outputs[%d].Name = %q, want %q", i, outputs[i].Name, name)
		}
	}
}

func TestInputSideIsDisabled(t *testing.T) {
	d, _, _ := newTestDriver(t)

	if inputs, err := d.ListInputs(); err != nil || len(inputs) != 0 {
		t.Errorf("ListInputs = %v, %v, want none", inputs, err)
	}
	if err := d.SetInput("keyboard"); err == nil {
		t.Error("SetInput succeeded on a render-only driver")
	}
	var ev contracts.Event
	if d.Read(&ev) {
		t.Error("Read returned an event on a render-only driver")
	}
}

func TestSetOutputAndFlushAlwaysSucceed(t *testing.T) {
	d, _, _ := newTestDriver(t)

	for _, name := range []string{"SF2", "gm", "anything at all", ""} {
		if err := d.SetOutput(name); err != nil {
			t.Errorf("SetOutput(%q) = %v, want nil", name, err)
		}
	}
	if err := d.Flush(); err != nil {
		t.Errorf("Flush = %v, want nil", err)
	}
}

func TestStartStreamDrainsEvents(t *testing.T) {
	d, engine, _ := newTestDriver(t)

	events := make(chan contracts.Event, 8)
	d.StartStream(events)

	events <- event(0x90, 0x3C, 0x64)
	events <- event(0x91) // malformed, dropped with a warning
	events <- event(0x80, 0x3C)
	close(events)

	// Close waits for the drain goroutine, so every event queued before the
	// channel was closed has reached the engine by the time it returns.
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if n := len(engine.calls); n != 2 {
		t.Errorf("stream delivered %d engine calls, want 2", n)
	}
	if len(engine.sounding) != 0 {
		t.Errorf("%d notes still sounding", len(engine.sounding))
	}
}

func TestCloseWaitsForStreamGoroutine(t *testing.T) {
	d, _, _ := newTestDriver(t)

	events := make(chan contracts.Event)
	d.StartStream(events)

	release := make(chan struct{})
	go func() {
		<-release
		close(events)
	}()

	closed := make(chan struct{})
	go func() {
		d.Close()
		close(closed)
	}()

	// Close must block while the stream channel is still open.
	select {
	case <-closed:
		t.Fatal("Close returned while the event stream was still open")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return after the event stream was closed")
	}
}

func TestRenderProducesEngineOutput(t *testing.T) {
	d, engine, mixer := newTestDriver(t)
	engine.sample = 0.25

	if err := d.WriteEvent(event(0x90, 0x40, 0x7F)); err != nil {
		t.Fatalf("WriteEvent: %v", err)
	}
	buf := mixer.Pull(16, 1.0)
	for i, s := range buf {
		if s != 0.25 {
			t.Fatalf("sample %d = %v, want engine output", i, s)
		}
	}
	if engine.renders != 1 {
		t.Errorf("engine rendered %d times, want 1", engine.renders)
	}
}
