package detect

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-stalta/detect/stalta"
	"github.com/cwbudde/algo-stalta/detect/trigger"
	"github.com/cwbudde/algo-stalta/dsp/filter"
	"github.com/cwbudde/algo-stalta/internal/testutil"
)

func TestDetectorMatchesRun(t *testing.T) {
	x := testutil.DeterministicNoise(31, 1, 6000)
	for _, start := range []int{1500, 3000, 5950} {
		for i := start; i < min(start+40, len(x)); i++ {
			x[i] *= 12
		}
	}

	base := Params{STA: 5, LTA: 300, On: 3, Off: 1.1, SampleRate: 1}
	filtered := base
	filtered.Highpass, filtered.Lowpass = 0.02, 0.3

	for _, p := range []Params{base, filtered} {
		for _, closeAtEnd := range []bool{false, true} {
			p.CloseAtEnd = closeAtEnd
			assertDetectorMatchesRun(t, x, p)
		}
	}
}

func assertDetectorMatchesRun(t *testing.T, x []float64, p Params) {
	t.Helper()

	want, err := Run(x, p)
	if err != nil {
		t.Fatal(err)
	}

	d, err := NewDetector(p)
	if err != nil {
		t.Fatal(err)
	}

	got, err := d.ProcessBlock(x)
	if err != nil {
		t.Fatal(err)
	}
	if iv, ok := d.Flush(); ok {
		got = append(got, iv)
	}

	if !reflect.DeepEqual(got, want.Triggers) {
		t.Fatalf("%+v: detector %v, Run %v", p, got, want.Triggers)
	}
}

func TestDetectorProcessReportsClose(t *testing.T) {
	d, err := NewDetector(spikeParams())
	if err != nil {
		t.Fatal(err)
	}

	var closed []trigger.Interval
	for i, x := range spikeRecord() {
		_, iv, ok, err := d.Process(x)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			if i != iv.Off {
				t.Fatalf("interval %v reported at sample %d", iv, i)
			}
			closed = append(closed, iv)
		}
		if i == 52 && !d.Armed() {
			t.Fatal("detector must be armed inside the burst")
		}
	}

	if want := []trigger.Interval{{On: 50, Off: 59}}; !reflect.DeepEqual(closed, want) {
		t.Fatalf("closed = %v, want %v", closed, want)
	}
}

func TestDetectorFlushResets(t *testing.T) {
	d, err := NewDetector(spikeParams())
	if err != nil {
		t.Fatal(err)
	}

	first, err := d.ProcessBlock(spikeRecord())
	if err != nil {
		t.Fatal(err)
	}
	d.Flush()

	second, err := d.ProcessBlock(spikeRecord())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second stream %v differs from first %v", second, first)
	}
}

func TestDetectorRejectsBadSample(t *testing.T) {
	d, err := NewDetector(spikeParams())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := d.ProcessBlock([]float64{0, math.NaN()}); !errors.Is(err, stalta.ErrSampleRange) {
		t.Fatalf("error = %v, want ErrSampleRange", err)
	}
}

func TestDetectorRejectedSampleKeepsFilterState(t *testing.T) {
	x := testutil.DeterministicNoise(8, 1, 2000)
	for i := 1200; i < 1240; i++ {
		x[i] *= 12
	}
	p := Params{STA: 5, LTA: 300, On: 3, Off: 1.1, SampleRate: 1, Highpass: 0.02, CloseAtEnd: true}

	clean, err := NewDetector(p)
	if err != nil {
		t.Fatal(err)
	}
	want, err := clean.ProcessBlock(x)
	if err != nil {
		t.Fatal(err)
	}

	d, err := NewDetector(p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := d.ProcessBlock(x[:700])
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := d.Process(math.Inf(1)); !errors.Is(err, stalta.ErrSampleRange) {
		t.Fatalf("error = %v, want ErrSampleRange", err)
	}
	rest, err := d.ProcessBlock(x[700:])
	if err != nil {
		t.Fatal(err)
	}
	got = append(got, rest...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after rejected sample %v, want %v", got, want)
	}
}

func TestNewDetectorErrors(t *testing.T) {
	if _, err := NewDetector(Params{STA: 1, LTA: 10, On: 3, Off: 1}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}
	if _, err := NewDetector(Params{STA: 0.001, LTA: 10, On: 3, Off: 1, SampleRate: 100}); !errors.Is(err, stalta.ErrInvalidWindow) {
		t.Fatalf("error = %v, want ErrInvalidWindow", err)
	}

	if _, err := NewDetector(Params{STA: 1, LTA: 10, On: 3, Off: 1, SampleRate: 100, Highpass: 60}); !errors.Is(err, filter.ErrInvalidFrequency) {
		t.Fatalf("error = %v, want ErrInvalidFrequency", err)
	}

	d, err := NewDetector(Params{STA: 10, LTA: 1, On: 3, Off: 1, SampleRate: 100})
	if !IsWarning(err) || d == nil {
		t.Fatalf("NewDetector() = %v, %v; want detector and warning", d, err)
	}
}
