package synth

import (
	"github.com/gosynth/midisynth/internal/logger"
	"github.com/gosynth/midisynth/internal/synth/soundfont"
	"github.com/gosynth/midisynth/sdk/contracts"
)

// defaultSampleRate is used when the host does not configure one.
const defaultSampleRate = 44100

// applyDefaultOptions sets default values for ClientOptions if not
// explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: A structure containing the finalized options with defaults applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.Backend == "" {
		options.Backend = soundfont.BackendName
	}

	if options.SynthConfig == nil {
		options.SynthConfig = &contracts.SynthConfig{}
	}
	if options.SynthConfig.SampleRate == 0 {
		options.SynthConfig.SampleRate = defaultSampleRate
	}
	if options.SynthConfig.SystemDir == "" {
		options.SynthConfig.SystemDir = "."
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
