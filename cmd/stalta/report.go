package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-stalta/detect"
	"github.com/cwbudde/algo-stalta/detect/event"
	"github.com/cwbudde/algo-stalta/dsp/core"
	timestats "github.com/cwbudde/algo-stalta/stats/time"
)

// report is everything the command prints. It is built from an explicit
// detection result rather than any state kept between runs.
type report struct {
	Params    detect.Params   `yaml:"params"`
	Samples   int             `yaml:"samples"`
	NSTA      int             `yaml:"nsta"`
	NLTA      int             `yaml:"nlta"`
	PeakRatio float64         `yaml:"peak_ratio"`
	Events    []event.Summary `yaml:"events"`
}

func newReport(p detect.Params, x []float64, res detect.Result, events []event.Summary) report {
	peak := 0.0
	for _, v := range res.CFT {
		peak = max(peak, v)
	}

	return report{
		Params:    p,
		Samples:   len(x),
		NSTA:      res.NSTA,
		NLTA:      res.NLTA,
		PeakRatio: peak,
		Events:    events,
	}
}

func writeReport(w io.Writer, format string, r report) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}
	return writeTable(w, r)
}

func writeTable(w io.Writer, r report) error {
	if _, err := fmt.Fprintf(w, "%d samples at %g Hz, STA %d / LTA %d samples, on %g / off %g, peak STA/LTA %.2f\n\n",
		r.Samples, r.Params.SampleRate, r.NSTA, r.NLTA, r.Params.On, r.Params.Off, r.PeakRatio); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if len(r.Events) == 0 {
		_, err := fmt.Fprintln(w, "no events")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\tOn [s]\tOff [s]\tDuration [s]\tPeak STA/LTA\tPeak [dB]\tPeak amp\tCrest [dB]\tDominant [Hz]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t------\t-------\t------------\t------------\t---------\t--------\t----------\t-------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, e := range r.Events {
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\t%.4g\t%.1f\t%.2f\n",
			i+1,
			e.OnTime,
			e.OffTime,
			e.Duration,
			e.PeakRatio,
			core.LinearPowerToDB(e.PeakRatio),
			e.PeakAmplitude,
			timestats.CrestFactorDB(e.CrestFactor),
			e.DominantFrequency,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}
