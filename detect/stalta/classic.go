package stalta

import (
	"errors"

	"github.com/cwbudde/algo-stalta/dsp/buffer"
	"github.com/cwbudde/algo-stalta/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

var scratchPool = buffer.NewPool()

// Classic returns the STA/LTA characteristic function of x for a short
// window of nsta samples and a long window of nlta samples.
//
// It fails with ErrEmptyInput, ErrInvalidWindow (a window below 1 or longer
// than x) or ErrSampleRange without computing anything. When nsta > nlta the
// full result is returned together with ErrDegenerateWindowOrder.
func Classic(x []float64, nsta, nlta int) ([]float64, error) {
	return ClassicInto(nil, x, nsta, nlta)
}

// ClassicInto is like Classic but writes into dst, reusing its capacity.
// dst may alias x. The returned slice has len(x) elements.
func ClassicInto(dst, x []float64, nsta, nlta int) ([]float64, error) {
	err := validateWindows(len(x), nsta, nlta)
	if err != nil && !errors.Is(err, ErrDegenerateWindowOrder) {
		return nil, err
	}

	if serr := validateSamples(x, powerLimit(max(nsta, nlta))); serr != nil {
		return nil, serr
	}

	sq := scratchPool.Get(len(x))
	squares := sq.Samples()
	vecmath.MulBlock(squares, x, x)

	dst = core.EnsureLen(dst, len(x))
	classic(dst, squares, nsta, nlta)
	scratchPool.Put(sq)

	return dst, err
}

// classic fills dst from precomputed squared samples (unchecked).
func classic(dst, squares []float64, nsta, nlta int) {
	sta := newMeanPower(nsta)
	lta := newMeanPower(nlta)
	warmup := max(nsta, nlta) - 1

	for i, v := range squares {
		sta.add(v)
		if i >= nsta {
			sta.remove(squares[i-nsta])
		}

		lta.add(v)
		if i >= nlta {
			lta.remove(squares[i-nlta])
		}

		if i < warmup {
			dst[i] = 0
			continue
		}

		dst[i] = ratio(&sta, &lta)
	}
}
