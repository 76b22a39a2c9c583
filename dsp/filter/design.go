package filter

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidFrequency is returned for a corner frequency outside (0, Nyquist)
// or a band whose highpass corner is not below its lowpass corner.
var ErrInvalidFrequency = errors.New("filter: invalid corner frequency")

// BandOrder is the order of each edge of the filter built by Band.
const BandOrder = 4

const defaultQ = 1 / math.Sqrt2

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Highpass designs a highpass biquad at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// ButterworthQ returns the section quality factors of an even-order
// Butterworth filter.
func ButterworthQ(order int) []float64 {
	if order < 2 {
		return nil
	}

	n := order / 2
	qs := make([]float64, n)
	for k := range qs {
		qs[k] = 1 / (2 * math.Sin(float64(2*k+1)*math.Pi/float64(2*order)))
	}

	return qs
}

// Band builds a Butterworth band-limiting cascade: a highpass edge at low and
// a lowpass edge at high, each of order BandOrder. A corner of 0 omits that
// edge; at least one must be set.
func Band(low, high, sampleRate float64) (*Chain, error) {
	if low == 0 && high == 0 {
		return nil, fmt.Errorf("%w: no corner set", ErrInvalidFrequency)
	}
	if low != 0 {
		if _, ok := normalizedW0(low, sampleRate); !ok {
			return nil, fmt.Errorf("%w: highpass %v Hz at %v Hz", ErrInvalidFrequency, low, sampleRate)
		}
	}
	if high != 0 {
		if _, ok := normalizedW0(high, sampleRate); !ok {
			return nil, fmt.Errorf("%w: lowpass %v Hz at %v Hz", ErrInvalidFrequency, high, sampleRate)
		}
	}
	if low != 0 && high != 0 && low >= high {
		return nil, fmt.Errorf("%w: highpass %v Hz not below lowpass %v Hz", ErrInvalidFrequency, low, high)
	}

	var coeffs []Coefficients
	for _, q := range ButterworthQ(BandOrder) {
		if low != 0 {
			coeffs = append(coeffs, Highpass(low, q, sampleRate))
		}
		if high != 0 {
			coeffs = append(coeffs, Lowpass(high, q, sampleRate))
		}
	}

	return NewChain(coeffs...), nil
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Coefficients{}
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
