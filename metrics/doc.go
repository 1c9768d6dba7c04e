// Package metrics scores predicted labels against true labels.
//
// Functions accept any label type, so they work both on encoded class codes
// and on caller-space labels returned by selftrain.Classifier.Predict.
package metrics
