// Package time measures time-domain statistics of record segments.
package time

import "math"

// Segment holds the time-domain statistics of one segment.
type Segment struct {
	Length        int
	Mean          float64
	RMS           float64
	Peak          float64 // largest absolute value
	PeakPos       int     // first index of Peak
	CrestFactor   float64 // Peak / RMS, 0 for a silent segment
	ZeroCrossings int
}

// Measure computes all segment statistics in a single pass.
func Measure(signal []float64) Segment {
	s := Segment{Length: len(signal)}
	if len(signal) == 0 {
		return s
	}

	// Kahan-compensated sum for the mean.
	var sum, c, sumSq float64
	for i, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		sumSq += x * x

		if a := math.Abs(x); a > s.Peak || i == 0 {
			s.Peak = a
			s.PeakPos = i
		}
		if i > 0 && signal[i-1]*x < 0 {
			s.ZeroCrossings++
		}
	}

	n := float64(len(signal))
	s.Mean = sum / n
	s.RMS = math.Sqrt(sumSq / n)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}

	return s
}

// DC returns the mean of the signal.
func DC(signal []float64) float64 {
	return Measure(signal).Mean
}

// CrestFactorDB converts a linear crest factor to decibels. Returns -Inf for 0.
func CrestFactorDB(cf float64) float64 {
	if cf == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(cf)
}
