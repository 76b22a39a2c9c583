package stalta

import "math"

// meanPower tracks the mean square over a sliding window of fixed length.
// The caller adds each new squared sample and removes the one that leaves
// the window. The sum is Neumaier-compensated, and it snaps back to exactly
// zero whenever the window holds no non-zero sample, so cancellation residue
// never outlives the energy that produced it.
type meanPower struct {
	length  int
	sum     float64
	comp    float64
	nonzero int
}

func newMeanPower(length int) meanPower {
	return meanPower{length: length}
}

func (p *meanPower) add(sq float64) {
	if sq != 0 {
		p.nonzero++
	}
	p.accumulate(sq)
}

func (p *meanPower) remove(sq float64) {
	if sq != 0 {
		p.nonzero--
	}
	if p.nonzero == 0 {
		p.sum, p.comp = 0, 0
		return
	}
	p.accumulate(-sq)
}

func (p *meanPower) accumulate(v float64) {
	t := p.sum + v
	if math.Abs(p.sum) >= math.Abs(v) {
		p.comp += (p.sum - t) + v
	} else {
		p.comp += (v - t) + p.sum
	}
	p.sum = t
}

func (p *meanPower) mean() float64 {
	s := p.sum + p.comp
	if s <= 0 {
		return 0
	}
	return s / float64(p.length)
}

func (p *meanPower) reset() {
	p.sum, p.comp, p.nonzero = 0, 0, 0
}

// ratio returns sta/lta, or 0 when the long-term power is zero. A quotient
// that overflows (a subnormal long-term power under a short window still
// holding a large sample) is clamped to math.MaxFloat64.
func ratio(sta, lta *meanPower) float64 {
	l := lta.mean()
	if l <= 0 {
		return 0
	}

	r := sta.mean() / l
	if math.IsInf(r, 1) {
		return math.MaxFloat64
	}
	return r
}
