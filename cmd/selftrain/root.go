// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plbecker/scikit-learn/internal/config"
	"github.com/plbecker/scikit-learn/internal/experiment"
	"github.com/plbecker/scikit-learn/internal/logging"
	"github.com/plbecker/scikit-learn/telemetry"
)

// app is the state shared by every subcommand, filled in PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	textfile   string

	cfg      config.Config
	log      *zap.Logger
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "selftrain",
		Short:         "Self-training experiments on synthetic data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.finish()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML experiment file (defaults apply when empty)")
	pf.StringVar(&a.logLevel, "log-level", "", "override logging.level: debug, info, warn, error")
	pf.StringVar(&a.textfile, "metrics-textfile", "", "override metrics.textfile")

	cmd.AddCommand(newRunCmd(a), newSweepCmd(a), newCompareCmd(a))

	return cmd
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.textfile != "" {
		cfg.Metrics.Textfile = a.textfile
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.log = log.Named(cmd.Name())
	a.registry = prometheus.NewRegistry()

	return nil
}

// runner validates the possibly flag-modified config and prepares the data.
func (a *app) runner() (*experiment.Runner, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	return experiment.NewRunner(a.cfg, a.log, telemetry.NewMetrics(a.registry))
}

// finish writes the metrics textfile and flushes the logger.
func (a *app) finish() error {
	if a.cfg.Metrics.Textfile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.Metrics.Textfile, a.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	// stderr sync fails on some platforms; the error carries no information
	_ = a.log.Sync()

	return nil
}
