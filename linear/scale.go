// SPDX-License-Identifier: MIT

package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// standardizer stores per-column means and scales learned from training data.
type standardizer struct {
	means  []float64
	scales []float64 // population std; 1 for constant columns
}

// fitStandardizer computes column means and standard deviations.
// Implementation:
//   - Stage 1: accumulate column sums in fixed i→j order.
//   - Stage 2: accumulate squared deviations.
//   - Stage 3: degenerate (zero-variance) columns get scale 1.
//
// Complexity: O(n·d).
func fitStandardizer(X mat.Matrix) standardizer {
	r, c := X.Dims()
	means := make([]float64, c)
	scales := make([]float64, c)

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			means[j] += X.At(i, j)
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			d := X.At(i, j) - means[j]
			scales[j] += d * d
		}
	}
	for j = 0; j < c; j++ {
		s := math.Sqrt(scales[j] * invR)
		if s == 0 {
			s = 1
		}
		scales[j] = s
	}

	return standardizer{means: means, scales: scales}
}

// transform returns (X - means) / scales as a new dense matrix.
func (s standardizer) transform(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		return (v - s.means[j]) / s.scales[j]
	}, X)

	return out
}
