package synth

import (
	"errors"

	"github.com/gosynth/midisynth/sdk/contracts"
)

// ErrNoOutput is returned when NewSynthDriver is called without an output name.
var ErrNoOutput = errors.New("synth driver requires an output name")

// NewSynthDriver creates a new synthesis driver with the specified options.
// It applies default options and initializes the configured backend.
//
// input is accepted for symmetry with bidirectional drivers and ignored:
// synthesis drivers are render-only. output must be non-empty; the name
// itself is advisory and not validated against ListOutputs.
//
// Returns:
//   - contracts.SynthDriver: An instance of the synthesis driver.
//   - error: An error, if any occurred during the creation of the driver.
func NewSynthDriver(input, output string, opts ...contracts.Option) (contracts.SynthDriver, error) {
	if output == "" {
		return nil, ErrNoOutput
	}

	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	if input != "" {
		options.Logger.Debug("ignoring input name on a render-only driver",
			options.Logger.Field().String("input", input))
	}

	driver, err := newDriver(&options)
	if err != nil {
		return nil, err
	}

	return driver, nil
}
