package contracts

// SynthConfig holds configuration for the synthesis backend.
type SynthConfig struct {
	SampleRate    int    // Output sample rate in Hz.
	SystemDir     string // Directory the General MIDI bank (GM.SF2) is loaded from.
	SoundFontPath string // Explicit bank path; overrides SystemDir when set.
}

// ClientOptions defines the configuration options for a synth driver.
type ClientOptions struct {
	Logger      Logger       // Logger for logging events and errors.
	LogLevel    LogLevel     // Level of logging to use.
	Backend     string       // Name of the synthesis backend to initialize.
	Mixer       Mixer        // Audio output subsystem; a default one is created when nil.
	SynthConfig *SynthConfig // Configuration specific to the synthesis backend.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the synth driver.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the synth driver.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithBackend selects the synthesis backend by name.
func WithBackend(name string) Option {
	return func(opts *ClientOptions) {
		opts.Backend = name
	}
}

// WithMixer sets the audio output subsystem the driver renders into.
func WithMixer(m Mixer) Option {
	return func(opts *ClientOptions) {
		opts.Mixer = m
	}
}

// WithSynthConfig sets the full synthesis backend configuration.
func WithSynthConfig(config SynthConfig) Option {
	return func(opts *ClientOptions) {
		opts.SynthConfig = &config
	}
}

// WithSampleRate sets the output sample rate for the synthesis backend.
func WithSampleRate(rate int) Option {
	return func(opts *ClientOptions) {
		ensureSynthConfig(opts).SampleRate = rate
	}
}

// WithSystemDirectory sets the directory the sound bank is loaded from.
func WithSystemDirectory(dir string) Option {
	return func(opts *ClientOptions) {
		ensureSynthConfig(opts).SystemDir = dir
	}
}

// WithSoundFontPath sets an explicit sound bank path, bypassing SystemDir.
func WithSoundFontPath(path string) Option {
	return func(opts *ClientOptions) {
		ensureSynthConfig(opts).SoundFontPath = path
	}
}

func ensureSynthConfig(opts *ClientOptions) *SynthConfig {
	if opts.SynthConfig == nil {
		opts.SynthConfig = &SynthConfig{}
	}
	return opts.SynthConfig
}
