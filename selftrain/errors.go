// SPDX-License-Identifier: MIT

package selftrain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of every configuration or input error
// detected before fitting starts. Specific sentinels below wrap it, so
// errors.Is(err, ErrInvalidArgument) matches any of them.
var ErrInvalidArgument = errors.New("selftrain: invalid argument")

// ErrNotFitted is returned by Predict, PredictProba and Score before a successful Fit.
var ErrNotFitted = errors.New("selftrain: this Classifier instance is not fitted yet")

var (
	// ErrNilEstimator indicates a nil base estimator.
	ErrNilEstimator = fmt.Errorf("%w: base estimator cannot be nil", ErrInvalidArgument)

	// ErrMissingPredictProba indicates a base estimator without PredictProba.
	ErrMissingPredictProba = fmt.Errorf("%w: base estimator must implement PredictProba", ErrInvalidArgument)

	// ErrThreshold indicates a threshold outside [0,1) or NaN.
	ErrThreshold = fmt.Errorf("%w: threshold must be in [0,1)", ErrInvalidArgument)

	// ErrMaxIter indicates a negative MaxIter.
	ErrMaxIter = fmt.Errorf("%w: max iter must be >= 0 or NoIterationLimit", ErrInvalidArgument)

	// ErrPatience indicates a negative Patience.
	ErrPatience = fmt.Errorf("%w: patience must be > 0 or EarlyStoppingDisabled", ErrInvalidArgument)

	// ErrPromotionPolicy indicates PromotionFraction outside (0,1] or MinPromotions < 1.
	ErrPromotionPolicy = fmt.Errorf("%w: promotion fraction must be in (0,1] and min promotions >= 1", ErrInvalidArgument)

	// ErrEmptyInput indicates X without rows or columns.
	ErrEmptyInput = fmt.Errorf("%w: X must have at least one sample and one feature", ErrInvalidArgument)

	// ErrDimensionMismatch indicates that X rows and len(y) differ.
	ErrDimensionMismatch = fmt.Errorf("%w: X rows must match len(y)", ErrInvalidArgument)

	// ErrNoLabeled indicates that every entry of y is the unlabeled sentinel.
	ErrNoLabeled = fmt.Errorf("%w: y contains no labeled samples", ErrInvalidArgument)

	// ErrSentinel indicates that no unlabeled sentinel could be chosen for the label type.
	ErrSentinel = fmt.Errorf("%w: label dtype cannot encode the unlabeled sentinel", ErrInvalidArgument)
)

// ErrProbaShape indicates that the base estimator returned probabilities of
// the wrong shape (rows ≠ queried samples or columns ≠ number of classes).
var ErrProbaShape = errors.New("selftrain: PredictProba returned an unexpected shape")
