// SPDX-License-Identifier: MIT

package synth

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadConfig indicates a non-positive count, non-positive std or an empty center box.
	ErrBadConfig = errors.New("synth: invalid generator config")

	// ErrKeepOutOfRange indicates keep < 0 or keep > len(y) in HideLabels.
	ErrKeepOutOfRange = errors.New("synth: keep out of range")
)

// BlobsConfig describes an isotropic Gaussian mixture.
type BlobsConfig struct {
	Samples    int     // total rows, ≥ 1
	Features   int     // columns, ≥ 1
	Centers    int     // classes, 1 ≤ Centers ≤ Samples
	ClusterStd float64 // per-feature standard deviation, > 0
	BoxMin     float64 // centers are drawn uniformly in [BoxMin, BoxMax)
	BoxMax     float64
	Seed       int64
}

// DefaultBlobsConfig mirrors the usual toy setting: 100 samples, 2 features,
// 3 centers in [-10,10), unit std.
func DefaultBlobsConfig() BlobsConfig {
	return BlobsConfig{
		Samples:    100,
		Features:   2,
		Centers:    3,
		ClusterStd: 1,
		BoxMin:     -10,
		BoxMax:     10,
	}
}

func (c BlobsConfig) validate() error {
	switch {
	case c.Samples < 1, c.Features < 1, c.Centers < 1:
		return fmt.Errorf("samples=%d features=%d centers=%d: %w", c.Samples, c.Features, c.Centers, ErrBadConfig)
	case c.Centers > c.Samples:
		return fmt.Errorf("centers=%d > samples=%d: %w", c.Centers, c.Samples, ErrBadConfig)
	case !(c.ClusterStd > 0) || math.IsInf(c.ClusterStd, 0):
		return fmt.Errorf("cluster_std=%v: %w", c.ClusterStd, ErrBadConfig)
	case !(c.BoxMax > c.BoxMin):
		return fmt.Errorf("box=[%v,%v): %w", c.BoxMin, c.BoxMax, ErrBadConfig)
	}

	return nil
}

// Blobs draws cfg.Samples points around cfg.Centers random centers and
// returns them shuffled, with the generating center as class code.
// Implementation:
//   - Stage 1: validate cfg.
//   - Stage 2: draw centers uniformly in the box.
//   - Stage 3: split samples evenly (the first Samples%Centers centers get
//     one extra) and draw each point as center + N(0, std²) per feature.
//   - Stage 4: Fisher–Yates shuffle of rows and labels together.
//
// Complexity: O(Samples·Features).
func Blobs(cfg BlobsConfig) (*mat.Dense, []int, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	rng := NewRand(cfg.Seed)

	// Stage 2: centers.
	centers := mat.NewDense(cfg.Centers, cfg.Features, nil)
	width := cfg.BoxMax - cfg.BoxMin
	for c := 0; c < cfg.Centers; c++ {
		for j := 0; j < cfg.Features; j++ {
			centers.Set(c, j, cfg.BoxMin+width*rng.Float64())
		}
	}

	// Stage 3: samples.
	X := mat.NewDense(cfg.Samples, cfg.Features, nil)
	y := make([]int, cfg.Samples)
	per, extra := cfg.Samples/cfg.Centers, cfg.Samples%cfg.Centers
	row := 0
	for c := 0; c < cfg.Centers; c++ {
		count := per
		if c < extra {
			count++
		}
		for s := 0; s < count; s++ {
			for j := 0; j < cfg.Features; j++ {
				X.Set(row, j, centers.At(c, j)+cfg.ClusterStd*rng.NormFloat64())
			}
			y[row] = c
			row++
		}
	}

	// Stage 4: shuffle rows and labels in lockstep.
	tmp := make([]float64, cfg.Features)
	for i := cfg.Samples - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		if i == j {
			continue
		}
		copy(tmp, X.RawRowView(i))
		X.SetRow(i, X.RawRowView(j))
		X.SetRow(j, tmp)
		y[i], y[j] = y[j], y[i]
	}

	return X, y, nil
}

// HideLabels returns a copy of y in which all but keep randomly chosen
// entries are replaced by sentinel.
//
// Complexity: O(len(y)).
func HideLabels[L any](y []L, keep int, sentinel L, seed int64) ([]L, error) {
	if keep < 0 || keep > len(y) {
		return nil, fmt.Errorf("keep=%d len=%d: %w", keep, len(y), ErrKeepOutOfRange)
	}

	out := make([]L, len(y))
	for i := range out {
		out[i] = sentinel
	}
	for _, idx := range NewRand(seed).Perm(len(y))[:keep] {
		out[idx] = y[idx]
	}

	return out, nil
}

// Split returns the first n rows/labels and the rest as two views, for a
// simple holdout. The views share storage with X.
func Split(X *mat.Dense, y []int, n int) (*mat.Dense, []int, *mat.Dense, []int, error) {
	rows, cols := X.Dims()
	if rows != len(y) || n < 1 || n >= rows {
		return nil, nil, nil, nil, fmt.Errorf("split at %d of %d rows (%d labels): %w", n, rows, len(y), ErrBadConfig)
	}
	head := X.Slice(0, n, 0, cols).(*mat.Dense)
	tail := X.Slice(n, rows, 0, cols).(*mat.Dense)

	return head, y[:n], tail, y[n:], nil
}
