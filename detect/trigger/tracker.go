package trigger

// Tracker applies the trigger rule incrementally. Indices count the values
// passed to Update since creation or Reset.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	on, off float64
	armed   bool
	start   int
	next    int
}

// NewTracker returns an unarmed Tracker.
func NewTracker(on, off float64) *Tracker {
	return &Tracker{on: on, off: off}
}

// Update consumes the next characteristic function value. It returns the
// completed interval and true when this value disarms the tracker.
func (t *Tracker) Update(v float64) (Interval, bool) {
	i := t.next
	t.next++

	if !t.armed {
		if v >= t.on {
			t.armed = true
			t.start = i
		}
		return Interval{}, false
	}

	if v < t.off {
		t.armed = false
		return Interval{On: t.start, Off: i}, true
	}

	return Interval{}, false
}

// Armed reports whether an interval is open.
func (t *Tracker) Armed() bool {
	return t.armed
}

// Flush ends the data. An open interval is discarded, or with closeAtEnd
// returned closed at the last consumed index provided that index lies after
// its start. The tracker is unarmed afterwards.
func (t *Tracker) Flush(closeAtEnd bool) (Interval, bool) {
	if !t.armed {
		return Interval{}, false
	}
	t.armed = false

	last := t.next - 1
	if !closeAtEnd || last <= t.start {
		return Interval{}, false
	}
	return Interval{On: t.start, Off: last}, true
}

// Reset returns the tracker to its initial state.
func (t *Tracker) Reset() {
	t.armed = false
	t.start = 0
	t.next = 0
}
