package stalta

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stalta/dsp/buffer"
	"github.com/cwbudde/algo-stalta/dsp/core"
)

// Stream computes the characteristic function one sample at a time with
// O(max(nsta, nlta)) memory. For the same input it produces exactly the
// values Classic produces.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	nsta, nlta int
	history    *buffer.Ring // squared samples, newest first
	sta, lta   meanPower
	limit      float64
	samples    int64
}

// NewStream creates a Stream for the given window lengths. It fails with
// ErrInvalidWindow for a window below 1. When nsta > nlta it returns a usable
// Stream together with ErrDegenerateWindowOrder.
func NewStream(nsta, nlta int) (*Stream, error) {
	err := validateWindows(-1, nsta, nlta)
	if err != nil && !errors.Is(err, ErrDegenerateWindowOrder) {
		return nil, err
	}

	width := max(nsta, nlta)
	s := &Stream{
		nsta:    nsta,
		nlta:    nlta,
		history: buffer.NewRing(width),
		sta:     newMeanPower(nsta),
		lta:     newMeanPower(nlta),
		limit:   powerLimit(width),
	}

	return s, err
}

// ProcessSample consumes one sample and returns the characteristic function
// value at it. A sample rejected with ErrSampleRange leaves the state untouched.
func (s *Stream) ProcessSample(x float64) (float64, error) {
	if err := validateSample(x, s.limit); err != nil {
		return 0, err
	}

	sq := x * x
	held := s.history.Len()
	staOut := s.history.At(s.nsta - 1)
	ltaOut := s.history.At(s.nlta - 1)
	s.history.Push(sq)

	s.sta.add(sq)
	if held >= s.nsta {
		s.sta.remove(staOut)
	}

	s.lta.add(sq)
	if held >= s.nlta {
		s.lta.remove(ltaOut)
	}

	s.samples++
	if !s.Ready() {
		return 0, nil
	}

	return ratio(&s.sta, &s.lta), nil
}

// ProcessBlock consumes src and writes one value per sample into dst, reusing
// its capacity. On a rejected sample it stops and returns the values computed
// so far together with the error.
func (s *Stream) ProcessBlock(dst, src []float64) ([]float64, error) {
	dst = core.EnsureLen(dst, len(src))
	for i, x := range src {
		v, err := s.ProcessSample(x)
		if err != nil {
			return dst[:i], fmt.Errorf("index %d: %w", i, err)
		}
		dst[i] = v
	}
	return dst, nil
}

// Ready reports whether the long window has filled, i.e. whether values are
// past the warm-up region.
func (s *Stream) Ready() bool {
	return s.samples >= int64(max(s.nsta, s.nlta))
}

// Samples returns the number of samples consumed since creation or Reset.
func (s *Stream) Samples() int64 {
	return s.samples
}

// Windows returns the short and long window lengths in samples.
func (s *Stream) Windows() (nsta, nlta int) {
	return s.nsta, s.nlta
}

// Reset clears all history so the next sample starts a new record.
func (s *Stream) Reset() {
	s.history.Reset()
	s.sta.reset()
	s.lta.reset()
	s.samples = 0
}
