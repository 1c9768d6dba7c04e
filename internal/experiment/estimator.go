// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"

	"github.com/plbecker/scikit-learn/internal/config"
	"github.com/plbecker/scikit-learn/linear"
	"github.com/plbecker/scikit-learn/neighbors"
	"github.com/plbecker/scikit-learn/selftrain"
)

// NewEstimator builds a fresh, unfitted base estimator from c.
func NewEstimator(c config.EstimatorConfig) (selftrain.ProbabilisticEstimator, error) {
	switch c.Kind {
	case config.EstimatorKNN:
		knn := neighbors.NewKNN(c.K)
		knn.Workers = c.Workers

		return knn, nil
	case config.EstimatorLogistic:
		lr := linear.NewLogisticRegression()
		lr.LearningRate, lr.Epochs, lr.L2 = c.LearningRate, c.Epochs, c.L2

		return lr, nil
	default:
		return nil, fmt.Errorf("experiment: unknown estimator kind %q", c.Kind)
	}
}
