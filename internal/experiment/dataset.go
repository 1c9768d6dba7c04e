// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/plbecker/scikit-learn/internal/config"
	"github.com/plbecker/scikit-learn/synth"
)

// Dataset is a generated holdout split with full ground truth.
type Dataset struct {
	XTrain *mat.Dense
	YTrain []int
	XTest  *mat.Dense
	YTest  []int
	seed   int64
}

// Prepare generates the blobs described by d and splits off the test rows.
func Prepare(d config.DataConfig) (Dataset, error) {
	cfg := synth.DefaultBlobsConfig()
	cfg.Samples, cfg.Features, cfg.Centers = d.Samples, d.Features, d.Centers
	cfg.ClusterStd, cfg.Seed = d.ClusterStd, d.Seed

	X, y, err := synth.Blobs(cfg)
	if err != nil {
		return Dataset{}, fmt.Errorf("experiment: generate: %w", err)
	}
	Xtr, ytr, Xte, yte, err := synth.Split(X, y, d.TrainSamples())
	if err != nil {
		return Dataset{}, fmt.Errorf("experiment: split: %w", err)
	}

	return Dataset{XTrain: Xtr, YTrain: ytr, XTest: Xte, YTest: yte, seed: d.Seed}, nil
}

// Partial returns the training labels with all but keep of them replaced by
// -1. The same keep always hides the same samples.
func (d Dataset) Partial(keep int) ([]int, error) {
	y, err := synth.HideLabels(d.YTrain, keep, -1, synth.DeriveSeed(d.seed, uint64(keep)))
	if err != nil {
		return nil, fmt.Errorf("experiment: hide labels: %w", err)
	}

	return y, nil
}

// labeledSubset returns the rows of X whose label is not -1.
func labeledSubset(X *mat.Dense, y []int) (*mat.Dense, []int) {
	rows := make([]int, 0, len(y))
	for i, v := range y {
		if v != -1 {
			rows = append(rows, i)
		}
	}
	_, d := X.Dims()
	out := mat.NewDense(len(rows), d, nil)
	codes := make([]int, len(rows))
	for i, r := range rows {
		out.SetRow(i, X.RawRowView(r))
		codes[i] = y[r]
	}

	return out, codes
}
