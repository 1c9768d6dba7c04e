// SPDX-License-Identifier: MIT

package selftrain

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/plbecker/scikit-learn/metrics"
)

// Predict returns the predicted label of every row of X, decoded to L.
// Returns ErrNotFitted before a successful Fit.
func (c *Classifier[L]) Predict(X mat.Matrix) ([]L, error) {
	if !c.fitted {
		return nil, ErrNotFitted
	}
	codes, err := c.estimator.Predict(X)
	if err != nil {
		return nil, fmt.Errorf("selftrain: predict: %w", err)
	}

	return c.encoder.Decode(codes)
}

// PredictProba returns an n×K matrix of class probabilities; column k
// belongs to Classes()[k]. Returns ErrNotFitted before a successful Fit.
func (c *Classifier[L]) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !c.fitted {
		return nil, ErrNotFitted
	}
	proba, err := c.estimator.PredictProba(X)
	if err != nil {
		return nil, fmt.Errorf("selftrain: predict proba: %w", err)
	}

	return proba, nil
}

// Score returns the accuracy of Predict(X) against y.
func (c *Classifier[L]) Score(X mat.Matrix, y []L) (float64, error) {
	pred, err := c.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.Accuracy(y, pred)
}

// Fitted reports whether the last Fit succeeded.
func (c *Classifier[L]) Fitted() bool { return c.fitted }

// Transduction returns the final label of every training sample; samples
// never promoted keep the unlabeled sentinel. Nil before Fit.
func (c *Classifier[L]) Transduction() []L {
	if !c.fitted {
		return nil
	}
	// codes come from the encoder itself, Decode cannot fail on them
	out, _ := c.encoder.Decode(c.transduction)

	return out
}

// LabeledIter returns, per training sample, the iteration it was labeled in:
// 0 for originally labeled samples, NeverLabeled for samples left unlabeled.
// Nil before Fit.
func (c *Classifier[L]) LabeledIter() []int {
	if !c.fitted {
		return nil
	}

	return slices.Clone(c.labeledIter)
}

// NIter returns the number of self-training iterations executed.
func (c *Classifier[L]) NIter() int { return c.nIter }

// Termination returns why the last Fit stopped.
func (c *Classifier[L]) Termination() Termination { return c.termination }

// Estimator returns the fitted base estimator (nil before Fit).
func (c *Classifier[L]) Estimator() ProbabilisticEstimator { return c.estimator }

// Classes returns the sorted label alphabet seen in the last Fit.
func (c *Classifier[L]) Classes() []L {
	if !c.fitted {
		return nil
	}

	return c.encoder.Classes()
}

// Warnings returns the non-fatal conditions recorded by the last Fit.
func (c *Classifier[L]) Warnings() []Warning { return slices.Clone(c.warnings) }
