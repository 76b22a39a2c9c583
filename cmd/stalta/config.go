package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-stalta/detect"
)

const envPrefix = "STALTA"

type config struct {
	Detect   detect.Params `mapstructure:"detect" yaml:"detect"`
	Synth    synthConfig   `mapstructure:"synth" yaml:"synth"`
	Format   string        `mapstructure:"format" yaml:"format"`
	LogLevel string        `mapstructure:"log_level" yaml:"log_level"`
}

// synthConfig describes the synthetic record: white noise with evenly spaced
// decaying bursts and an optional one-sample glitch at a tenth of the record.
type synthConfig struct {
	Duration  float64 `mapstructure:"duration" yaml:"duration"` // seconds
	Noise     float64 `mapstructure:"noise" yaml:"noise"`
	Events    int     `mapstructure:"events" yaml:"events"`
	Amplitude float64 `mapstructure:"amplitude" yaml:"amplitude"`
	Frequency float64 `mapstructure:"frequency" yaml:"frequency"` // Hz
	Decay     float64 `mapstructure:"decay" yaml:"decay"`         // seconds
	Glitch    float64 `mapstructure:"glitch" yaml:"glitch"` // 0 disables
	Seed      int64   `mapstructure:"seed" yaml:"seed"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"sta":          "detect.sta",
	"lta":          "detect.lta",
	"on":           "detect.on",
	"off":          "detect.off",
	"sample-rate":  "detect.sample_rate",
	"close-at-end": "detect.close_at_end",
	"highpass":     "detect.highpass",
	"lowpass":      "detect.lowpass",
	"duration":     "synth.duration",
	"noise":        "synth.noise",
	"events":       "synth.events",
	"amplitude":    "synth.amplitude",
	"frequency":    "synth.frequency",
	"decay":        "synth.decay",
	"glitch":       "synth.glitch",
	"seed":         "synth.seed",
	"format":       "format",
	"log-level":    "log_level",
}

func defaultConfig() config {
	return config{
		Detect: detect.DefaultParams(),
		Synth: synthConfig{
			Duration:  120,
			Noise:     0.02,
			Events:    2,
			Amplitude: 1,
			Frequency: 5,
			Decay:     2,
			Seed:      1,
		},
		Format:   "table",
		LogLevel: "info",
	}
}

func registerFlags(fs *pflag.FlagSet) {
	def := defaultConfig()

	fs.String("config", "", "YAML configuration file")
	fs.Float64("sta", def.Detect.STA, "short-term window in seconds")
	fs.Float64("lta", def.Detect.LTA, "long-term window in seconds")
	fs.Float64("on", def.Detect.On, "trigger-on threshold")
	fs.Float64("off", def.Detect.Off, "trigger-off threshold")
	fs.Float64("sample-rate", def.Detect.SampleRate, "sampling rate in Hz")
	fs.Bool("close-at-end", def.Detect.CloseAtEnd, "close an event still open at the end of the record instead of dropping it")
	fs.Float64("highpass", def.Detect.Highpass, "pre-filter highpass corner in Hz (0 disables)")
	fs.Float64("lowpass", def.Detect.Lowpass, "pre-filter lowpass corner in Hz (0 disables)")
	fs.Float64("duration", def.Synth.Duration, "synthetic record length in seconds")
	fs.Float64("noise", def.Synth.Noise, "background noise amplitude")
	fs.Int("events", def.Synth.Events, "number of synthetic events")
	fs.Float64("amplitude", def.Synth.Amplitude, "event peak amplitude")
	fs.Float64("frequency", def.Synth.Frequency, "event frequency in Hz")
	fs.Float64("decay", def.Synth.Decay, "event decay time constant in seconds")
	fs.Float64("glitch", def.Synth.Glitch, "one-sample glitch amplitude (0 disables)")
	fs.Int64("seed", def.Synth.Seed, "noise seed")
	fs.String("format", def.Format, "output format: table or yaml")
	fs.String("log-level", def.LogLevel, "log level: debug, info, warn, error")
}

// loadConfig resolves flags, environment and the optional config file.
func loadConfig(fs *pflag.FlagSet) (config, error) {
	v := viper.New()

	def := defaultConfig()
	v.SetDefault("detect.sta", def.Detect.STA)
	v.SetDefault("detect.lta", def.Detect.LTA)
	v.SetDefault("detect.on", def.Detect.On)
	v.SetDefault("detect.off", def.Detect.Off)
	v.SetDefault("detect.sample_rate", def.Detect.SampleRate)
	v.SetDefault("detect.close_at_end", def.Detect.CloseAtEnd)
	v.SetDefault("detect.highpass", def.Detect.Highpass)
	v.SetDefault("detect.lowpass", def.Detect.Lowpass)
	v.SetDefault("synth.duration", def.Synth.Duration)
	v.SetDefault("synth.noise", def.Synth.Noise)
	v.SetDefault("synth.events", def.Synth.Events)
	v.SetDefault("synth.amplitude", def.Synth.Amplitude)
	v.SetDefault("synth.frequency", def.Synth.Frequency)
	v.SetDefault("synth.decay", def.Synth.Decay)
	v.SetDefault("synth.glitch", def.Synth.Glitch)
	v.SetDefault("synth.seed", def.Synth.Seed)
	v.SetDefault("format", def.Format)
	v.SetDefault("log_level", def.LogLevel)

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return config{}, fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}

	switch cfg.Format {
	case "table", "yaml":
	default:
		return config{}, fmt.Errorf("unknown format %q (want table or yaml)", cfg.Format)
	}

	return cfg, nil
}
