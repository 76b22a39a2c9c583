// Package detect wires the STA/LTA characteristic function and the trigger
// extractor together for callers that think in seconds rather than samples.
//
// Run processes a record held in memory and returns everything a renderer or
// exporter needs in one Result value. Detector does the same for an unbounded
// stream, emitting each interval as soon as it closes.
//
// Params may enable a Butterworth pre-filter (Highpass, Lowpass) that
// band-limits the record before the characteristic function is computed.
//
// Warning-class conditions (a short window longer than the long window,
// inverted thresholds) do not stop processing: the complete result is returned
// together with an error for which IsWarning reports true.
package detect
