// SPDX-License-Identifier: MIT

package selftrain

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// NeverLabeled marks, in LabeledIter, a sample still unlabeled at termination.
const NeverLabeled = -1

// Estimator is a supervised classifier over dense class codes 0..K-1.
type Estimator interface {
	// Fit trains on X (n×d) with one code per row.
	Fit(X mat.Matrix, y []int) error

	// Predict returns one class code per row of X.
	Predict(X mat.Matrix) ([]int, error)
}

// ProbabilisticEstimator is an Estimator that also scores every class.
// PredictProba returns an n×K matrix whose rows sum to 1, column k being code k.
type ProbabilisticEstimator interface {
	Estimator
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}

// Cloner is implemented by estimators that can produce an unfitted copy
// with the same hyperparameters.
type Cloner interface {
	Clone() Estimator
}

// Namer lets an estimator choose how it is named in error messages.
type Namer interface {
	Name() string
}

// ProgressFunc receives one call per iteration with the iteration index
// (1-based) and the number of samples promoted in it.
type ProgressFunc func(iteration, promoted int)

// Termination records why the fit loop stopped.
type Termination int

const (
	// TerminationNone is the zero value of an unfitted Classifier.
	TerminationNone Termination = iota
	// AllLabeled: no unlabeled samples were left.
	AllLabeled
	// MaxIter: the iteration budget was exhausted.
	MaxIter
	// EarlyStopping: rounds without promotions reached the patience.
	EarlyStopping
)

// String returns the snake_case name of t.
func (t Termination) String() string {
	switch t {
	case AllLabeled:
		return "all_labeled"
	case MaxIter:
		return "max_iter"
	case EarlyStopping:
		return "early_stopping"
	default:
		return "none"
	}
}

// WarningKind classifies non-fatal conditions met during Fit.
type WarningKind int

const (
	// WarnNoUnlabeled: y had no unlabeled samples; Fit ran one supervised fit.
	WarnNoUnlabeled WarningKind = iota + 1
	// WarnEarlyStoppingIneffective: Patience exceeds MaxIter and can never fire.
	WarnEarlyStoppingIneffective
	// WarnMaxIterReached: the budget ran out before the other stop conditions.
	WarnMaxIterReached
)

// String returns the snake_case name of k.
func (k WarningKind) String() string {
	switch k {
	case WarnNoUnlabeled:
		return "no_unlabeled"
	case WarnEarlyStoppingIneffective:
		return "early_stopping_ineffective"
	case WarnMaxIterReached:
		return "max_iter_reached"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal condition recorded by Fit.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return w.Kind.String() + ": " + w.Message }

// estimatorName names e for error messages: Namer first, else its Go type.
func estimatorName(e Estimator) string {
	if n, ok := e.(Namer); ok {
		return n.Name()
	}

	return strings.TrimPrefix(fmt.Sprintf("%T", e), "*")
}
