// Package event summarises triggered intervals: timing, peak amplitude, peak
// characteristic-function value and dominant frequency.
package event

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-stalta/detect/trigger"
	"github.com/cwbudde/algo-stalta/dsp/core"
	"github.com/cwbudde/algo-stalta/dsp/window"
	timestats "github.com/cwbudde/algo-stalta/stats/time"
)

// Errors returned by Describe.
var (
	ErrInvalidSampleRate = errors.New("event: sample rate must be positive")
	ErrLengthMismatch    = errors.New("event: samples and characteristic function must have same length")
	ErrIntervalRange     = errors.New("event: interval outside record")
)

// Summary describes one triggered interval.
type Summary struct {
	trigger.Interval `yaml:",inline"`

	OnTime            float64 `yaml:"on_time"`  // seconds from record start
	OffTime           float64 `yaml:"off_time"` // seconds from record start
	Duration          float64 `yaml:"duration"` // seconds
	PeakIndex         int     `yaml:"peak_index"`
	PeakAmplitude     float64 `yaml:"peak_amplitude"` // absolute value
	PeakRatio         float64 `yaml:"peak_ratio"`     // max STA/LTA inside the interval
	RMS               float64 `yaml:"rms"`
	CrestFactor       float64 `yaml:"crest_factor"`
	DominantFrequency float64 `yaml:"dominant_frequency"`
}

// Describe summarises the samples x[iv.On..iv.Off] of a record and its
// characteristic function cft.
func Describe(x, cft []float64, iv trigger.Interval, sampleRate float64) (Summary, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return Summary{}, ErrInvalidSampleRate
	}
	if len(x) != len(cft) {
		return Summary{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(cft))
	}
	if iv.On < 0 || iv.Off >= len(x) || iv.On >= iv.Off {
		return Summary{}, fmt.Errorf("%w: [%d, %d] for %d samples", ErrIntervalRange, iv.On, iv.Off, len(x))
	}

	seg := x[iv.On : iv.Off+1]
	m := timestats.Measure(seg)

	s := Summary{
		Interval:      iv,
		OnTime:        float64(iv.On) / sampleRate,
		OffTime:       float64(iv.Off) / sampleRate,
		Duration:      float64(iv.Len()) / sampleRate,
		PeakIndex:     iv.On + m.PeakPos,
		PeakAmplitude: m.Peak,
		RMS:           m.RMS,
		CrestFactor:   m.CrestFactor,
	}

	for _, v := range cft[iv.On : iv.Off+1] {
		s.PeakRatio = math.Max(s.PeakRatio, v)
	}

	f, err := dominantFrequency(seg, m.Mean, sampleRate)
	if err != nil {
		return Summary{}, err
	}
	s.DominantFrequency = f

	return s, nil
}

// DescribeAll summarises every interval in ivs.
func DescribeAll(x, cft []float64, ivs []trigger.Interval, sampleRate float64) ([]Summary, error) {
	out := make([]Summary, 0, len(ivs))
	for _, iv := range ivs {
		s, err := Describe(x, cft, iv, sampleRate)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// dominantFrequency returns the frequency of the strongest non-DC bin of the
// mean-removed, Hann-tapered and zero-padded segment.
func dominantFrequency(seg []float64, mean, sampleRate float64) (float64, error) {
	if len(seg) < 2 {
		return 0, nil
	}

	taper, err := window.Hann(len(seg), window.WithPeriodic())
	if err != nil {
		return 0, fmt.Errorf("event: taper: %w", err)
	}

	buf := make([]float64, len(seg))
	for i, v := range seg {
		buf[i] = v - mean
	}
	if err := window.ApplyCoefficientsInPlace(buf, taper); err != nil {
		return 0, fmt.Errorf("event: taper: %w", err)
	}

	fftSize := nextPowerOf2(len(seg))
	in := make([]complex128, fftSize)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("event: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("event: fft: %w", err)
	}

	bestBin, bestPow := 0, 0.0
	for k := 1; k <= fftSize/2; k++ {
		re, im := real(out[k]), imag(out[k])
		if p := re*re + im*im; p > bestPow {
			bestBin, bestPow = k, p
		}
	}

	return float64(bestBin) * sampleRate / float64(fftSize), nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
