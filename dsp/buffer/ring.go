package buffer

import "github.com/cwbudde/algo-stalta/dsp/core"

// Ring is a fixed-capacity history of the most recent values pushed into it.
// Once full, every Push overwrites the oldest value.
type Ring struct {
	data  []float64
	write int
	count int
}

// NewRing returns an empty Ring holding at most capacity values.
// A capacity below 1 is raised to 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]float64, capacity)}
}

// Push appends v as the newest value.
func (r *Ring) Push(v float64) {
	r.data[r.write] = v
	r.write++
	if r.write == len(r.data) {
		r.write = 0
	}
	if r.count < len(r.data) {
		r.count++
	}
}

// At returns the value pushed age calls ago; age 0 is the newest value.
// It returns 0 when age is outside [0, Len()).
func (r *Ring) At(age int) float64 {
	if age < 0 || age >= r.count {
		return 0
	}
	idx := r.write - 1 - age
	if idx < 0 {
		idx += len(r.data)
	}
	return r.data[idx]
}

// Len returns the number of values currently held.
func (r *Ring) Len() int {
	return r.count
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int {
	return len(r.data)
}

// Reset discards all held values.
func (r *Ring) Reset() {
	core.Zero(r.data)
	r.write = 0
	r.count = 0
}
