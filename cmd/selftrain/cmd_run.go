// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/plbecker/scikit-learn/internal/experiment"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		threshold float64
		labeled   int
		maxIter   int
		estimator string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fit one self-training classifier and score it on the holdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			if f.Changed("threshold") {
				a.cfg.SelfTrain.Threshold = threshold
			}
			if f.Changed("labeled") {
				a.cfg.Data.Labeled = labeled
			}
			if f.Changed("max-iter") {
				a.cfg.SelfTrain.MaxIter = maxIter
			}
			if f.Changed("estimator") {
				a.cfg.Estimator.Kind = estimator
			}

			r, err := a.runner()
			if err != nil {
				return err
			}
			res, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}
			experiment.WriteResults(cmd.OutOrStdout(), []experiment.Result{res})

			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0, "override selftrain.threshold")
	cmd.Flags().IntVar(&labeled, "labeled", 0, "override data.labeled")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "override selftrain.max_iter")
	cmd.Flags().StringVar(&estimator, "estimator", "", "override estimator.kind: knn, logistic")

	return cmd
}
