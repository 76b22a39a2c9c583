package trigger

// Interval is a triggered event in sample indices, with On < Off.
type Interval struct {
	On  int `json:"on" yaml:"on"`
	Off int `json:"off" yaml:"off"`
}

// Len returns the interval length in samples.
func (iv Interval) Len() int {
	return iv.Off - iv.On
}

// Option configures Onset.
type Option func(*config)

type config struct {
	closeAtEnd bool
}

// WithCloseAtEnd closes an interval that is still armed at the end of the
// data at the last index instead of dropping it.
func WithCloseAtEnd() Option {
	return func(c *config) {
		c.closeAtEnd = true
	}
}

// Onset returns the trigger intervals of cft for the given thresholds in
// ascending order. It returns nil when nothing triggers.
func Onset(cft []float64, on, off float64, opts ...Option) []Interval {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var (
		out []Interval
		tr  = NewTracker(on, off)
	)

	for _, v := range cft {
		if iv, ok := tr.Update(v); ok {
			out = append(out, iv)
		}
	}

	if iv, ok := tr.Flush(cfg.closeAtEnd); ok {
		out = append(out, iv)
	}

	return out
}
