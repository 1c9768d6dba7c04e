// Package sklearn is a small semi-supervised learning toolkit built around
// self-training: a probabilistic classifier labels its own most confident
// predictions and retrains on them.
//
// 🚀 What is inside?
//
//	• selftrain/  — the self-training meta-classifier (any label type, any estimator)
//	• labels/     — label alphabets, the unlabeled sentinel, dense encoding
//	• neighbors/  — k-nearest-neighbour classifier with vote probabilities
//	• linear/     — multinomial logistic regression
//	• metrics/    — accuracy, macro F1, confusion matrix
//	• synth/      — seeded Gaussian blobs and label hiding
//	• telemetry/  — Prometheus collectors and zap progress reporting
//
// ✨ Why self-training?
//
//   - Labels are expensive, unlabeled samples are not
//   - Works with any estimator that exposes class probabilities
//   - Every pseudo-label is traceable: Transduction and LabeledIter record
//     what was assigned and when
//
// Quick example:
//
//	st := selftrain.New[int](neighbors.NewKNN(5), selftrain.DefaultOptions())
//	if err := st.Fit(X, y); err != nil { // y uses -1 for unlabeled samples
//		return err
//	}
//	pred, _ := st.Predict(Xnew)
//
// The selftrain command (cmd/selftrain) runs single fits, threshold sweeps
// and supervised-versus-self-training comparisons from a YAML file.
package sklearn
