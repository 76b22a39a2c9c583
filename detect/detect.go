package detect

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stalta/detect/event"
	"github.com/cwbudde/algo-stalta/detect/stalta"
	"github.com/cwbudde/algo-stalta/detect/trigger"
	"github.com/cwbudde/algo-stalta/dsp/core"
	"github.com/cwbudde/algo-stalta/dsp/filter"
)

// ErrInvalidSampleRate is returned for a sample rate that is not a positive number.
var ErrInvalidSampleRate = errors.New("detect: sample rate must be positive")

// Params configures a detection run. Window lengths are in seconds and are
// truncated to whole samples at SampleRate.
//
// Highpass and Lowpass are corner frequencies in Hz of an optional
// Butterworth pre-filter applied before the characteristic function; 0
// leaves that edge open.
type Params struct {
	STA        float64 `yaml:"sta" mapstructure:"sta"`
	LTA        float64 `yaml:"lta" mapstructure:"lta"`
	On         float64 `yaml:"on" mapstructure:"on"`
	Off        float64 `yaml:"off" mapstructure:"off"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	CloseAtEnd bool    `yaml:"close_at_end" mapstructure:"close_at_end"`
	Highpass   float64 `yaml:"highpass" mapstructure:"highpass"`
	Lowpass    float64 `yaml:"lowpass" mapstructure:"lowpass"`
}

// DefaultParams returns a 1 s / 10 s window pair with on/off thresholds of
// 3.5 and 1.0 at 100 Hz.
func DefaultParams() Params {
	return Params{
		STA:        1,
		LTA:        10,
		On:         3.5,
		Off:        1,
		SampleRate: 100,
	}
}

// Windows returns the short and long window lengths in samples.
func (p Params) Windows() (nsta, nlta int) {
	return core.SamplesFor(p.STA, p.SampleRate), core.SamplesFor(p.LTA, p.SampleRate)
}

// Filtered reports whether p enables the pre-filter.
func (p Params) Filtered() bool {
	return p.Highpass != 0 || p.Lowpass != 0
}

// prefilter returns the pre-filter cascade, or nil when none is configured.
func (p Params) prefilter() (*filter.Chain, error) {
	if !p.Filtered() {
		return nil, nil
	}

	band, err := filter.Band(p.Highpass, p.Lowpass, p.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	return band, nil
}

// Result holds the output of Run. CFT is computed from the pre-filtered
// record when Params enables filtering.
type Result struct {
	CFT        []float64
	Triggers   []trigger.Interval
	NSTA, NLTA int
	SampleRate float64
}

// Events summarises every trigger of r against the record x passed to Run.
func (r Result) Events(x []float64) ([]event.Summary, error) {
	return event.DescribeAll(x, r.CFT, r.Triggers, r.SampleRate)
}

// Run computes the characteristic function of x and its trigger intervals.
// Fatal errors return a zero Result. Warnings are joined into the returned
// error alongside a complete Result.
func Run(x []float64, p Params) (Result, error) {
	warnings, err := checkParams(p)
	if err != nil {
		return Result{}, err
	}

	band, err := p.prefilter()
	if err != nil {
		return Result{}, err
	}

	src := x
	if band != nil {
		src = make([]float64, len(x))
		band.ProcessBlockTo(src, x)
	}

	nsta, nlta := p.Windows()

	cft, err := stalta.Classic(src, nsta, nlta)
	if err != nil {
		if !stalta.IsWarning(err) {
			return Result{}, fmt.Errorf("detect: %w", err)
		}
		warnings = append(warnings, err)
	}

	var opts []trigger.Option
	if p.CloseAtEnd {
		opts = append(opts, trigger.WithCloseAtEnd())
	}

	res := Result{
		CFT:        cft,
		Triggers:   trigger.Onset(cft, p.On, p.Off, opts...),
		NSTA:       nsta,
		NLTA:       nlta,
		SampleRate: p.SampleRate,
	}

	return res, errors.Join(warnings...)
}

// checkParams validates the parts of p that do not depend on the record.
func checkParams(p Params) ([]error, error) {
	if p.SampleRate <= 0 || !core.IsFinite(p.SampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, p.SampleRate)
	}

	var warnings []error
	if err := trigger.Validate(p.On, p.Off); err != nil {
		if !errors.Is(err, trigger.ErrInvertedThresholds) {
			return nil, err
		}
		warnings = append(warnings, err)
	}

	return warnings, nil
}

// IsWarning reports whether err carries only warning-class conditions.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}

	fatal := []error{
		ErrInvalidSampleRate,
		filter.ErrInvalidFrequency,
		stalta.ErrEmptyInput,
		stalta.ErrInvalidWindow,
		stalta.ErrSampleRange,
		trigger.ErrInvalidThreshold,
	}
	for _, f := range fatal {
		if errors.Is(err, f) {
			return false
		}
	}

	return errors.Is(err, stalta.ErrDegenerateWindowOrder) ||
		errors.Is(err, trigger.ErrInvertedThresholds)
}
