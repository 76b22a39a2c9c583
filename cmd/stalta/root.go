package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-stalta/detect"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stalta",
		Short:        "STA/LTA event detection on a synthetic seismogram",
		SilenceUsage: true,
	}
	registerFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd(), newParamsCmd())
	return root
}

func newLogger(cmd *cobra.Command, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Synthesise a record, detect events and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, cfg.LogLevel)
			if err != nil {
				return err
			}

			x, onsets, err := synthesize(cfg.Synth, cfg.Detect.SampleRate)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"samples": len(x),
				"rate":    cfg.Detect.SampleRate,
				"onsets":  onsets,
			}).Debug("synthesised record")

			res, err := detect.Run(x, cfg.Detect)
			if err != nil {
				if !detect.IsWarning(err) {
					return err
				}
				log.WithError(err).Warn("detection parameters are questionable; results may be meaningless")
			}

			events, err := res.Events(x)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"nsta":   res.NSTA,
				"nlta":   res.NLTA,
				"events": len(events),
			}).Info("detection finished")

			return writeReport(cmd.OutOrStdout(), cfg.Format, newReport(cfg.Detect, x, res, events))
		},
	}
}

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
