// Package buffer provides scratch storage for sample processing: a reusable
// float64 Buffer with a sync.Pool-backed Pool for batch kernels, and a
// fixed-capacity Ring that keeps the most recent samples of a stream.
package buffer
