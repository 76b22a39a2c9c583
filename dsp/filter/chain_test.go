package filter

import (
	"math"
	"testing"
)

func TestChainBlockMatchesSample(t *testing.T) {
	band, err := Band(1, 20, 100)
	if err != nil {
		t.Fatal(err)
	}

	input := make([]float64, 257)
	for i := range input {
		input[i] = math.Sin(float64(i)*0.7) + 0.1*float64(i%5)
	}

	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = band.ProcessSample(x)
	}

	band.Reset()
	got := make([]float64, len(input))
	band.ProcessBlockTo(got[:100], input[:100])
	band.ProcessBlockTo(got[100:], input[100:])

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChainStateRoundTrip(t *testing.T) {
	band, err := Band(0, 10, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 10 {
		band.ProcessSample(float64(i))
	}

	st := band.State()
	y1 := band.ProcessSample(3)
	band.SetState(st)
	if y2 := band.ProcessSample(3); y2 != y1 {
		t.Fatalf("restored chain gives %v, want %v", y2, y1)
	}
}

func TestEmptyChainCopies(t *testing.T) {
	c := NewChain()
	dst := make([]float64, 3)
	c.ProcessBlockTo(dst, []float64{1, 2, 3})
	if dst[0] != 1 || dst[2] != 3 || c.Order() != 0 {
		t.Fatalf("dst = %v, order %d", dst, c.Order())
	}
	if y := c.ProcessSample(4); y != 4 {
		t.Fatalf("ProcessSample = %v", y)
	}
}
