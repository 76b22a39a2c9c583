// Command stalta runs STA/LTA event detection on a synthetic seismogram and
// prints the detected events.
//
// Usage:
//
//	stalta run [flags]
//	stalta params [flags]
//
// Parameters come from flags, STALTA_* environment variables (for example
// STALTA_DETECT_ON=4) and an optional YAML file given with --config, in that
// order of precedence.
//
// Examples:
//
//	stalta run
//	stalta run --sta 0.5 --lta 5 --on 4 --off 1.5
//	stalta run --events 3 --noise 0.05 --format yaml
//	stalta run --highpass 1 --lowpass 10
//	stalta run --glitch 20
//	stalta params --config stalta.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
