// Package filter provides biquad IIR sections, cascades of them, and the
// Butterworth band-limiting filters used to condition a record before
// energy-based detection.
package filter
