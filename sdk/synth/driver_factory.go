package synth

import (
	"errors"
	"fmt"

	"github.com/gosynth/midisynth/internal/synth/soundfont"
	"github.com/gosynth/midisynth/sdk/contracts"
)

// ErrUnknownBackend is returned when no synthesis backend matches the
// configured name.
var ErrUnknownBackend = errors.New("unknown synthesis backend")

// backendInitializers maps backend names to corresponding driver
// initializers. Additional synthesis backends register here without
// changing the host contract.
var backendInitializers = map[string]func(*contracts.ClientOptions) (contracts.SynthDriver, error){
	soundfont.BackendName: soundfont.NewDriver,
}

// newDriver initializes the synthesis backend selected by the options.
func newDriver(opts *contracts.ClientOptions) (contracts.SynthDriver, error) {
	if initializer, exists := backendInitializers[opts.Backend]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
}
