package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-stalta/dsp/core"
)

// Generator creates deterministic test records from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Burst generates an exponentially decaying sine that starts at onset seconds
// and is silent before it: a*exp(-(t-onset)/decay)*sin(2*pi*f*(t-onset)).
func (g *Generator) Burst(freqHz, amplitude, onset, decay float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("burst samples must be > 0: %d", samples)
	}
	if freqHz <= 0 || freqHz >= g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("burst frequency must be in (0, %g): %f", g.cfg.SampleRate/2, freqHz)
	}
	if onset < 0 {
		return nil, fmt.Errorf("burst onset must be >= 0: %f", onset)
	}
	if decay <= 0 {
		return nil, fmt.Errorf("burst decay must be > 0: %f", decay)
	}

	out := make([]float64, samples)
	start := int(math.Ceil(onset * g.cfg.SampleRate))
	for i := max(start, 0); i < samples; i++ {
		t := float64(i)/g.cfg.SampleRate - onset
		out[i] = amplitude * math.Exp(-t/decay) * math.Sin(2*math.Pi*freqHz*t)
	}
	return out, nil
}

// Spike generates a record that is zero except for value amplitude at pos.
func (g *Generator) Spike(amplitude float64, samples, pos int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("spike samples must be > 0: %d", samples)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("spike position must be in [0,%d): %d", samples, pos)
	}
	out := make([]float64, samples)
	out[pos] = amplitude
	return out, nil
}

// Mix sums equal-length records sample by sample into a new slice.
func Mix(records ...[]float64) ([]float64, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("mix input must not be empty")
	}
	n := len(records[0])
	out := make([]float64, n)
	for k, r := range records {
		if len(r) != n {
			return nil, fmt.Errorf("mix record %d has length %d, want %d", k, len(r), n)
		}
		for i, v := range r {
			out[i] += v
		}
	}
	return out, nil
}
