// Package linear implements multinomial logistic regression (softmax
// regression) satisfying selftrain.ProbabilisticEstimator.
//
// Features are standardized column-wise (zero mean, unit variance; constant
// columns are only centered), then weights are learned by full-batch
// gradient descent on the L2-regularized cross-entropy. Training starts from
// zero weights and uses no randomness, so equal inputs give equal models.
//
// Complexity:
//   - Fit: O(Epochs · n · d · K).
//   - PredictProba: O(q · d · K).
package linear
