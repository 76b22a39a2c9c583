package trigger

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidThreshold reports a NaN or negative threshold.
	ErrInvalidThreshold = errors.New("trigger: threshold must be a number >= 0")

	// ErrInvertedThresholds reports an on threshold below the off threshold.
	// Extraction still runs but tends to emit short, back-to-back intervals.
	ErrInvertedThresholds = errors.New("trigger: on threshold is below off threshold")
)

// Validate checks a threshold pair. Onset itself accepts any pair; Validate is
// for callers that want to reject or warn about a configuration up front.
func Validate(on, off float64) error {
	if math.IsNaN(on) || on < 0 {
		return fmt.Errorf("%w: on=%v", ErrInvalidThreshold, on)
	}
	if math.IsNaN(off) || off < 0 {
		return fmt.Errorf("%w: off=%v", ErrInvalidThreshold, off)
	}
	if on < off {
		return fmt.Errorf("%w: on=%v < off=%v", ErrInvertedThresholds, on, off)
	}
	return nil
}
