// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/plbecker/scikit-learn/internal/experiment"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		thresholds []float64
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Fit once per threshold and compare holdout scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("thresholds") {
				a.cfg.Sweep.Thresholds = thresholds
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Sweep.Workers = workers
			}

			r, err := a.runner()
			if err != nil {
				return err
			}
			results, err := r.Sweep(cmd.Context())
			if err != nil {
				return err
			}
			experiment.WriteResults(cmd.OutOrStdout(), results)

			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&thresholds, "thresholds", nil, "override sweep.thresholds")
	cmd.Flags().IntVar(&workers, "workers", 0, "override sweep.workers")

	return cmd
}
