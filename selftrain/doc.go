// Package selftrain turns any probabilistic classifier into a semi-supervised
// learner by self-training.
//
// 🚀 What is self-training?
//
//	Given samples of which only some carry a label, the wrapped estimator is
//	fitted on the labeled part, asked for class probabilities on the rest,
//	and its most confident predictions are adopted as labels ("pseudo-labels")
//	for the next round. Rounds repeat until every sample is labeled, the
//	iteration budget runs out, or nothing new clears the confidence bar.
//
// ✨ Key features:
//   - any discrete label type (ints, named ints, strings) via package labels
//   - explicit capability check: the base estimator must implement PredictProba
//   - capped promotions per round (PromotionFraction of the initially unlabeled
//     samples, never fewer than MinPromotions), most confident first
//   - early stopping after Patience consecutive rounds without promotions
//   - injectable progress callback, zap logging, warnings kept as values
//
// ⚙️ Usage:
//
//	opts := selftrain.DefaultOptions()
//	opts.Threshold = 0.8
//	opts.MaxIter = 20
//
//	st := selftrain.New[int](neighbors.NewKNN(5), opts)
//	if err := st.Fit(X, y); err != nil { // y uses -1 for "unlabeled"
//		return err
//	}
//	pred, err := st.Predict(Xtest)
//
// String labels need an explicit sentinel:
//
//	st := selftrain.New[string](base, opts).SetUnlabeled("")
//
// Results after Fit: Transduction, LabeledIter, NIter, Termination,
// Estimator, Classes, Warnings.
//
// Concurrency:
//
//	A Classifier is not safe for concurrent use; Fit mutates its state in
//	place. Distinct instances share nothing and may be fitted in parallel.
//	When the base estimator implements Cloner every Fit trains a fresh clone,
//	so one prototype estimator may back many Classifiers.
package selftrain
