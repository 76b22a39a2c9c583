package main

import (
	"fmt"

	"github.com/cwbudde/algo-stalta/dsp/core"
	"github.com/cwbudde/algo-stalta/dsp/signal"
)

// synthesize builds the demo record and returns it with the event onsets in
// seconds. Events are spread evenly over the record. The glitch is not an
// event and is not listed among the onsets.
func synthesize(cfg synthConfig, sampleRate float64) ([]float64, []float64, error) {
	samples := core.SamplesFor(cfg.Duration, sampleRate)
	if samples <= 0 {
		return nil, nil, fmt.Errorf("synthetic record is empty: %g s at %g Hz", cfg.Duration, sampleRate)
	}
	if cfg.Events < 0 {
		return nil, nil, fmt.Errorf("event count must be >= 0: %d", cfg.Events)
	}

	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(sampleRate)},
		signal.WithSeed(cfg.Seed),
	)

	noise, err := g.WhiteNoise(cfg.Noise, samples)
	if err != nil {
		return nil, nil, err
	}

	records := [][]float64{noise}
	onsets := make([]float64, 0, cfg.Events)
	for k := range cfg.Events {
		onset := cfg.Duration * float64(k+1) / float64(cfg.Events+1)
		burst, err := g.Burst(cfg.Frequency, cfg.Amplitude, onset, cfg.Decay, samples)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, burst)
		onsets = append(onsets, onset)
	}

	if cfg.Glitch != 0 {
		pos := min(core.SamplesFor(cfg.Duration/10, sampleRate), samples-1)
		glitch, err := g.Spike(cfg.Glitch, samples, pos)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, glitch)
	}

	x, err := signal.Mix(records...)
	if err != nil {
		return nil, nil, err
	}
	return x, onsets, nil
}
