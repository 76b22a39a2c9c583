package core

// ProcessorConfig defines common processing settings.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a config for 100 Hz data, the usual
// broadband seismometer rate.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 100,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SamplesFor converts a duration in seconds to a whole number of samples at
// sampleRate. The fractional part is truncated. Non-positive inputs yield 0.
func SamplesFor(seconds, sampleRate float64) int {
	if seconds <= 0 || sampleRate <= 0 || !IsFinite(seconds) || !IsFinite(sampleRate) {
		return 0
	}
	return int(seconds * sampleRate)
}
