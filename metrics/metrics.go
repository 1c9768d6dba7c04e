// SPDX-License-Identifier: MIT

package metrics

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrLengthMismatch indicates yTrue and yPred of different lengths.
	ErrLengthMismatch = errors.New("metrics: yTrue and yPred lengths differ")

	// ErrEmpty indicates empty inputs.
	ErrEmpty = errors.New("metrics: empty input")
)

func checkPair(nTrue, nPred int) error {
	if nTrue != nPred {
		return fmt.Errorf("%d vs %d: %w", nTrue, nPred, ErrLengthMismatch)
	}
	if nTrue == 0 {
		return ErrEmpty
	}

	return nil
}

// Accuracy is the fraction of positions where yPred equals yTrue.
//
// Complexity: O(n).
func Accuracy[L comparable](yTrue, yPred []L) (float64, error) {
	if err := checkPair(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	hits := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(yTrue)), nil
}

// ConfusionMatrix counts (true, predicted) pairs over the sorted union of
// labels in both inputs: m[i][j] is the number of samples of classes[i]
// predicted as classes[j].
//
// Complexity: O(n + K²) time, O(K²) memory.
func ConfusionMatrix[L cmp.Ordered](yTrue, yPred []L) ([]L, *mat.Dense, error) {
	if err := checkPair(len(yTrue), len(yPred)); err != nil {
		return nil, nil, err
	}

	classes := append(slices.Clone(yTrue), yPred...)
	slices.Sort(classes)
	classes = slices.Compact(classes)
	index := make(map[L]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	m := mat.NewDense(len(classes), len(classes), nil)
	for i := range yTrue {
		r, c := index[yTrue[i]], index[yPred[i]]
		m.Set(r, c, m.At(r, c)+1)
	}

	return classes, m, nil
}

// MacroF1 is the unweighted mean of per-class F1 scores over the union of
// labels. A class with no true and no predicted samples cannot appear; a
// class with zero precision and recall contributes 0.
//
// Complexity: O(n + K²).
func MacroF1[L cmp.Ordered](yTrue, yPred []L) (float64, error) {
	classes, m, err := ConfusionMatrix(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	k := len(classes)
	sum := 0.0
	for c := 0; c < k; c++ {
		tp := m.At(c, c)
		predicted := mat.Sum(m.ColView(c))
		actual := mat.Sum(m.RowView(c))
		if tp == 0 {
			continue
		}
		precision, recall := tp/predicted, tp/actual
		sum += 2 * precision * recall / (precision + recall)
	}

	return sum / float64(k), nil
}
