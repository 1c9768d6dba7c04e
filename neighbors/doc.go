// Package neighbors implements a k-nearest-neighbours classifier that
// satisfies selftrain.ProbabilisticEstimator.
//
// Fit stores a copy of the training rows; prediction scans all of them
// (brute force, squared Euclidean distance) and votes uniformly among the
// K closest. PredictProba reports vote fractions, so with K=5 the possible
// confidences are 0, .2, .4, .6, .8 and 1.
//
// Query rows are split across goroutines (Workers, default GOMAXPROCS);
// every row is computed independently, results are deterministic.
//
// Complexity: Fit O(n·d); Predict O(q·n·(d + K)).
package neighbors
