package soundfont

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/gosynth/midisynth/internal/audio"
	"github.com/gosynth/midisynth/sdk/contracts"
)

// BackendName is the name this backend registers under.
const BackendName = "soundfont"

// bankFileName is the General MIDI bank loaded from the system directory
// when no explicit path is configured.
const bankFileName = "GM.SF2"

// percussionChannel is the 0-indexed General MIDI drum channel. Fixed by
// the standard, not configurable.
const percussionChannel = 9

// Error definitions for driver initialization and event handling issues.
var (
	ErrEventTooShort     = errors.New("midi event is shorter than two bytes")
	ErrInputNotSupported = errors.New("synth driver does not consume midi input")
)

// Driver renders live MIDI channel events into an audio stream. All mutable
// synth state lives behind engine; mu serializes the event-delivery path
// against the mixer's render pulls, which run on their own goroutine with no
// ordering relationship to event delivery.
type Driver struct {
	logger    contracts.Logger
	engine    contracts.Renderer
	mixer     contracts.Mixer
	ownsMixer bool

	mu     sync.Mutex // guards engine and closed
	closed bool

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDriver initializes the SoundFont backend: it loads the bank, configures
// the rendering engine for interleaved stereo at the configured sample rate,
// and registers the render callback with the mixer. On any failure nothing
// is left allocated.
func NewDriver(options *contracts.ClientOptions) (contracts.SynthDriver, error) {
	cfg := options.SynthConfig
	path := cfg.SoundFontPath
	if path == "" {
		path = filepath.Join(cfg.SystemDir, bankFileName)
	}

	engine, err := openEngine(path, cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("cannot load sound bank: %w", err)
	}

	mixer := options.Mixer
	ownsMixer := false
	if mixer == nil {
		mixer, err = audio.NewOtoMixer(cfg.SampleRate)
		if err != nil {
			engine.Close()
			return nil, fmt.Errorf("cannot open audio output: %w", err)
		}
		ownsMixer = true
	}

	d, err := newDriver(engine, mixer, ownsMixer, options.Logger)
	if err != nil {
		engine.Close()
		if ownsMixer {
			mixer.Close()
		}
		return nil, err
	}

	options.Logger.Info("soundfont synth driver initialized",
		options.Logger.Field().String("bank", path),
		options.Logger.Field().Int("sampleRate", cfg.SampleRate))
	return d, nil
}

// newDriver wires an already-open engine and mixer together. Split out so
// tests can inject fakes for both.
func newDriver(engine contracts.Renderer, mixer contracts.Mixer, ownsMixer bool, log contracts.Logger) (*Driver, error) {
	d := &Driver{
		logger:    log,
		engine:    engine,
		mixer:     mixer,
		ownsMixer: ownsMixer,
	}
	if err := mixer.PlaySynth(d.Render); err != nil {
		return nil, fmt.Errorf("cannot register render callback: %w", err)
	}
	mixer.SetActive(true)
	return d, nil
}

// StartStream drains events into WriteEvent until the channel is closed.
// Callers must close the channel before Close; Close waits for the drain
// goroutine, so pending events are applied before teardown.
func (d *Driver) StartStream(events <-chan contracts.Event) {
	if events == nil {
		d.logger.Error("StartStream called with nil events channel")
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for event := range events {
			if err := d.WriteEvent(event); err != nil {
				d.logger.Warn("dropping malformed midi event",
					d.logger.Field().Int("size", len(event.Data)))
			}
		}
	}()
}

// Read never yields an event; this driver has no input side.
func (d *Driver) Read(event *contracts.Event) bool {
	return false
}

// ListInputs returns no devices; this driver has no input side.
func (d *Driver) ListInputs() ([]contracts.DeviceInfo, error) {
	return nil, nil
}

// ListOutputs returns the advisory output names. The backend has a single
// operating mode; hosts match on the name they were configured with, so a
// few case-variant aliases are accepted.
func (d *Driver) ListOutputs() ([]contracts.DeviceInfo, error) {
	names := []string{"SF2", "sf2", "GM", "gm"}
	outputs := make([]contracts.DeviceInfo, len(names))
	for i, name := range names {
		outputs[i] = contracts.DeviceInfo{
			Name:         name,
			Manufacturer: "SoundFont",
			EntityName:   BackendName,
		}
	}
	return outputs, nil
}

// SetInput always fails; see Read.
func (d *Driver) SetInput(name string) error {
	d.logger.Warn("SetInput called on a render-only synth driver",
		d.logger.Field().String("input", name))
	return ErrInputNotSupported
}

// SetOutput always succeeds; the name is advisory and not validated.
func (d *Driver) SetOutput(name string) error {
	return nil
}

// Flush always succeeds; rendering has no internal queue to drain.
func (d *Driver) Flush() error {
	return nil
}

// Close deactivates the mixer, waits for any event stream to drain, releases
// the sound bank and marks the driver closed. Subsequent renders produce
// silence and subsequent events are no-ops. Safe to call more than once.
func (d *Driver) Close() error {
	d.closeOnce.Do(func() {
		d.logger.Info("closing soundfont synth driver")
		d.mixer.SetActive(false)
		d.wg.Wait() // stream channels must be closed by the caller first
		if d.ownsMixer {
			if err := d.mixer.Close(); err != nil {
				d.logger.Error("failed to close audio output",
					d.logger.Field().Error("error", err))
			}
		}

		d.mu.Lock()
		d.closed = true
		if err := d.engine.Close(); err != nil {
			d.logger.Error("failed to release sound bank",
				d.logger.Field().Error("error", err))
		}
		d.mu.Unlock()
	})
	return nil
}
