// SPDX-License-Identifier: MIT

package selftrain

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// promotion is one pseudo-label chosen in an iteration.
type promotion struct {
	pos        int     // row in the probability matrix (index into the unlabeled list)
	class      int     // argmax code
	confidence float64 // max probability
}

// scoreRows computes, per row of proba, the maximum probability and the first
// column reaching it.
//
// Complexity: O(r·K).
func scoreRows(proba mat.Matrix) (confidence []float64, class []int) {
	r, c := proba.Dims()
	confidence = make([]float64, r)
	class = make([]int, r)

	var i, j int
	for i = 0; i < r; i++ {
		best, arg := math.Inf(-1), 0
		for j = 0; j < c; j++ {
			if v := proba.At(i, j); v > best {
				best, arg = v, j
			}
		}
		confidence[i], class[i] = best, arg
	}

	return confidence, class
}

// selectConfident picks the rows whose confidence exceeds threshold.
// Implementation:
//   - Stage 1: keep rows with confidence > threshold (NaN never qualifies).
//   - Stage 2: stable sort by confidence descending; exact ties keep row order.
//   - Stage 3: truncate to limit.
//
// Complexity: O(r log r).
func selectConfident(confidence []float64, class []int, threshold float64, limit int) []promotion {
	picks := make([]promotion, 0)
	for i, c := range confidence {
		if c > threshold {
			picks = append(picks, promotion{pos: i, class: class[i], confidence: c})
		}
	}

	slices.SortStableFunc(picks, func(a, b promotion) int {
		return cmp.Compare(b.confidence, a.confidence)
	})

	if len(picks) > limit {
		picks = picks[:limit]
	}

	return picks
}

// checkProba verifies that proba is rows×k.
func checkProba(proba mat.Matrix, rows, k int) error {
	if proba == nil {
		return fmt.Errorf("got nil, want %dx%d: %w", rows, k, ErrProbaShape)
	}
	r, c := proba.Dims()
	if r != rows || c != k {
		return fmt.Errorf("got %dx%d, want %dx%d: %w", r, c, rows, k, ErrProbaShape)
	}

	return nil
}
