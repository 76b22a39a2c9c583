package detect

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stalta/detect/stalta"
	"github.com/cwbudde/algo-stalta/detect/trigger"
	"github.com/cwbudde/algo-stalta/dsp/filter"
)

// Detector runs detection over an unbounded stream. Interval indices count
// samples since creation or Reset.
//
// A Detector is not safe for concurrent use.
type Detector struct {
	params  Params
	band    *filter.Chain // nil without pre-filter
	stream  *stalta.Stream
	tracker *trigger.Tracker
}

// NewDetector creates a Detector. Like Run, it returns a usable Detector
// together with warning-class errors.
func NewDetector(p Params) (*Detector, error) {
	warnings, err := checkParams(p)
	if err != nil {
		return nil, err
	}

	band, err := p.prefilter()
	if err != nil {
		return nil, err
	}

	nsta, nlta := p.Windows()

	s, err := stalta.NewStream(nsta, nlta)
	if err != nil {
		if !stalta.IsWarning(err) {
			return nil, fmt.Errorf("detect: %w", err)
		}
		warnings = append(warnings, err)
	}

	d := &Detector{
		params:  p,
		band:    band,
		stream:  s,
		tracker: trigger.NewTracker(p.On, p.Off),
	}

	return d, errors.Join(warnings...)
}

// Process consumes one sample. It returns the characteristic function value
// and, when this sample closes an event, the interval and true. A rejected
// sample leaves the Detector unchanged.
func (d *Detector) Process(x float64) (float64, trigger.Interval, bool, error) {
	var state [][2]float64
	if d.band != nil {
		state = d.band.State()
		x = d.band.ProcessSample(x)
	}

	v, err := d.stream.ProcessSample(x)
	if err != nil {
		if d.band != nil {
			d.band.SetState(state)
		}
		return 0, trigger.Interval{}, false, err
	}

	iv, ok := d.tracker.Update(v)
	return v, iv, ok, nil
}

// ProcessBlock consumes src and returns the intervals closed within it.
func (d *Detector) ProcessBlock(src []float64) ([]trigger.Interval, error) {
	var out []trigger.Interval
	for i, x := range src {
		_, iv, ok, err := d.Process(x)
		if err != nil {
			return out, fmt.Errorf("index %d: %w", i, err)
		}
		if ok {
			out = append(out, iv)
		}
	}
	return out, nil
}

// Flush ends the stream, applying the end-of-data policy of the Params the
// Detector was created with, and readies the Detector for a new stream.
func (d *Detector) Flush() (trigger.Interval, bool) {
	iv, ok := d.tracker.Flush(d.params.CloseAtEnd)
	d.Reset()
	return iv, ok
}

// Armed reports whether an event is currently open.
func (d *Detector) Armed() bool {
	return d.tracker.Armed()
}

// Reset discards all stream state.
func (d *Detector) Reset() {
	if d.band != nil {
		d.band.Reset()
	}
	d.stream.Reset()
	d.tracker.Reset()
}
