package stalta

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-stalta/dsp/core"
)

// Errors returned by the characteristic function engine.
var (
	ErrEmptyInput    = errors.New("stalta: input is empty")
	ErrInvalidWindow = errors.New("stalta: invalid window length")
	ErrSampleRange   = errors.New("stalta: sample is non-finite or too large")

	// ErrDegenerateWindowOrder reports a short window longer than the long
	// window. It is returned together with a complete result, which has no
	// reliable detection meaning.
	ErrDegenerateWindowOrder = errors.New("stalta: short window is longer than long window")
)

// IsWarning reports whether err carries only warning-class conditions, in
// which case the result returned alongside it is complete.
func IsWarning(err error) bool {
	if err == nil || !errors.Is(err, ErrDegenerateWindowOrder) {
		return false
	}
	return !errors.Is(err, ErrEmptyInput) &&
		!errors.Is(err, ErrInvalidWindow) &&
		!errors.Is(err, ErrSampleRange)
}

// validateWindows checks window lengths against a record of n samples.
// n < 0 skips the record-length checks (streaming).
func validateWindows(n, nsta, nlta int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if nsta < 1 {
		return fmt.Errorf("%w: nsta must be >= 1: %d", ErrInvalidWindow, nsta)
	}
	if nlta < 1 {
		return fmt.Errorf("%w: nlta must be >= 1: %d", ErrInvalidWindow, nlta)
	}
	if n > 0 && nsta > n {
		return fmt.Errorf("%w: nsta=%d exceeds %d samples", ErrInvalidWindow, nsta, n)
	}
	if n > 0 && nlta > n {
		return fmt.Errorf("%w: nlta=%d exceeds %d samples", ErrInvalidWindow, nlta, n)
	}
	if nsta > nlta {
		return fmt.Errorf("%w: nsta=%d > nlta=%d", ErrDegenerateWindowOrder, nsta, nlta)
	}
	return nil
}

// powerLimit is the largest squared sample whose window sum over width
// samples cannot overflow.
func powerLimit(width int) float64 {
	return math.MaxFloat64 / float64(max(width, 1))
}

func validateSample(x, limit float64) error {
	if !core.IsFinite(x) || x*x > limit {
		return fmt.Errorf("%w: %v", ErrSampleRange, x)
	}
	return nil
}

func validateSamples(x []float64, limit float64) error {
	for i, v := range x {
		if err := validateSample(v, limit); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}
