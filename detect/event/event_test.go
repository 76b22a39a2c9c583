package event

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-stalta/detect/stalta"
	"github.com/cwbudde/algo-stalta/detect/trigger"
	"github.com/cwbudde/algo-stalta/dsp/core"
	"github.com/cwbudde/algo-stalta/dsp/signal"
	"github.com/cwbudde/algo-stalta/internal/testutil"
	timestats "github.com/cwbudde/algo-stalta/stats/time"
)

func TestDescribeSine(t *testing.T) {
	const fs = 100.0
	x := testutil.DeterministicSine(5, fs, 2, 256)
	cft := testutil.DC(1, len(x))
	cft[100] = 7

	s, err := Describe(x, cft, trigger.Interval{On: 0, Off: 255}, fs)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(s.DominantFrequency-5) > fs/256 {
		t.Errorf("DominantFrequency = %.3f, want ~5", s.DominantFrequency)
	}
	if s.PeakRatio != 7 {
		t.Errorf("PeakRatio = %v, want 7", s.PeakRatio)
	}
	if math.Abs(s.PeakAmplitude-2) > 1e-3 {
		t.Errorf("PeakAmplitude = %v, want ~2", s.PeakAmplitude)
	}
	if s.OnTime != 0 || math.Abs(s.OffTime-2.55) > 1e-12 || math.Abs(s.Duration-2.55) > 1e-12 {
		t.Errorf("times = %v/%v/%v, want 0/2.55/2.55", s.OnTime, s.OffTime, s.Duration)
	}
}

func TestDescribePeakIndex(t *testing.T) {
	x := []float64{0, 1, -5, 2, 0}
	cft := []float64{0, 3, 4, 2, 0}

	s, err := Describe(x, cft, trigger.Interval{On: 1, Off: 4}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.PeakIndex != 2 || s.PeakAmplitude != 5 {
		t.Fatalf("peak = %v at %d, want 5 at 2", s.PeakAmplitude, s.PeakIndex)
	}
	if s.PeakRatio != 4 {
		t.Fatalf("PeakRatio = %v, want 4", s.PeakRatio)
	}
	if math.Abs(s.RMS-math.Sqrt(30.0/4)) > 1e-12 {
		t.Fatalf("RMS = %v", s.RMS)
	}
	if math.Abs(s.CrestFactor-5/s.RMS) > 1e-12 {
		t.Fatalf("CrestFactor = %v", s.CrestFactor)
	}
}

func TestDescribeErrors(t *testing.T) {
	x := make([]float64, 10)
	cft := make([]float64, 10)

	tests := []struct {
		name string
		cft  []float64
		iv   trigger.Interval
		fs   float64
		want error
	}{
		{name: "rate", cft: cft, iv: trigger.Interval{On: 0, Off: 5}, fs: 0, want: ErrInvalidSampleRate},
		{name: "nan rate", cft: cft, iv: trigger.Interval{On: 0, Off: 5}, fs: math.NaN(), want: ErrInvalidSampleRate},
		{name: "length", cft: cft[:5], iv: trigger.Interval{On: 0, Off: 3}, fs: 100, want: ErrLengthMismatch},
		{name: "past end", cft: cft, iv: trigger.Interval{On: 2, Off: 10}, fs: 100, want: ErrIntervalRange},
		{name: "negative", cft: cft, iv: trigger.Interval{On: -1, Off: 3}, fs: 100, want: ErrIntervalRange},
		{name: "empty", cft: cft, iv: trigger.Interval{On: 3, Off: 3}, fs: 100, want: ErrIntervalRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Describe(x, tt.cft, tt.iv, tt.fs); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDescribeAllDetectedBurst(t *testing.T) {
	const fs = 100.0
	g := signal.NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(fs)}, signal.WithSeed(3))

	noise, err := g.WhiteNoise(0.01, 3000)
	if err != nil {
		t.Fatal(err)
	}
	burst, err := g.Burst(10, 1, 15, 1.5, 3000)
	if err != nil {
		t.Fatal(err)
	}
	x, err := signal.Mix(noise, burst)
	if err != nil {
		t.Fatal(err)
	}

	cft, err := stalta.Classic(x, 100, 1000)
	if err != nil {
		t.Fatal(err)
	}
	ivs := trigger.Onset(cft, 3.5, 1.0)
	if len(ivs) != 1 {
		t.Fatalf("got %d intervals (%v), want 1", len(ivs), ivs)
	}

	sums, err := DescribeAll(x, cft, ivs, fs)
	if err != nil {
		t.Fatal(err)
	}
	s := sums[0]

	if s.OnTime < 15 || s.OnTime > 15.5 {
		t.Errorf("OnTime = %.2f, want shortly after 15 s", s.OnTime)
	}
	if math.Abs(s.DominantFrequency-10) > 1 {
		t.Errorf("DominantFrequency = %.2f, want ~10", s.DominantFrequency)
	}
	if s.PeakRatio < 3.5 {
		t.Errorf("PeakRatio = %.2f, want >= 3.5", s.PeakRatio)
	}
}

func TestDominantFrequencyIgnoresOffset(t *testing.T) {
	const fs = 100.0
	seg := make([]float64, 300)
	for i := range seg {
		seg[i] = 50 + 0.5*math.Sin(2*math.Pi*7.3*float64(i)/fs)
	}

	f, err := dominantFrequency(seg, timestats.DC(seg), fs)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f-7.3) > fs/512 {
		t.Fatalf("dominant frequency = %.3f Hz, want ~7.3", f)
	}

	if f, err := dominantFrequency([]float64{1}, 1, fs); err != nil || f != 0 {
		t.Fatalf("single sample = %v, %v; want 0, nil", f, err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 256: 256, 257: 512}
	for in, want := range cases {
		if got := nextPowerOf2(in); got != want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}
