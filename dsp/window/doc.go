// Package window generates taper windows applied to record segments before
// spectral analysis.
package window
