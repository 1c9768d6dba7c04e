// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/plbecker/scikit-learn/internal/experiment"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		labeled []int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a supervised baseline with self-training across labeled budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("labeled") {
				a.cfg.Compare.LabeledCounts = labeled
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Compare.Workers = workers
			}

			r, err := a.runner()
			if err != nil {
				return err
			}
			cmps, err := r.Compare(cmd.Context())
			if err != nil {
				return err
			}
			experiment.WriteComparisons(cmd.OutOrStdout(), cmps)

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&labeled, "labeled", nil, "override compare.labeled_counts")
	cmd.Flags().IntVar(&workers, "workers", 0, "override compare.workers")

	return cmd
}
