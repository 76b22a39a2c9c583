// Package trigger turns a characteristic function into discrete event
// intervals with a two-threshold (hysteresis) rule.
//
// Scanning left to right, the detector arms at the first index whose value is
// at or above the on threshold and disarms at the first later index whose
// value is below the off threshold, emitting the pair as an Interval. Scanning
// resumes after the disarm index, so intervals are strictly ordered and never
// overlap:
//
//	on_k < off_k < on_{k+1}
//
// An interval still armed when the data ends is dropped unless WithCloseAtEnd
// is given, in which case it is closed at the last index.
//
// Onset works on a complete record; Tracker applies the same rule one value at
// a time for streams.
package trigger
