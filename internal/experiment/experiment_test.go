package experiment_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plbecker/scikit-learn/internal/config"
	"github.com/plbecker/scikit-learn/internal/experiment"
	"github.com/plbecker/scikit-learn/internal/logging"
	"github.com/plbecker/scikit-learn/linear"
	"github.com/plbecker/scikit-learn/neighbors"
	"github.com/plbecker/scikit-learn/selftrain"
	"github.com/plbecker/scikit-learn/telemetry"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Data.Samples, cfg.Data.Labeled = 120, 12
	cfg.Sweep.Thresholds = []float64{0.5, 0.9, 0.99}
	cfg.Sweep.Workers = 2
	cfg.Compare.LabeledCounts = []int{6, 12, 30}

	return cfg
}

func TestPrepare(t *testing.T) {
	cfg := smallConfig()
	ds, err := experiment.Prepare(cfg.Data)
	require.NoError(t, err)

	r, c := ds.XTrain.Dims()
	assert.Equal(t, cfg.Data.TrainSamples(), r)
	assert.Equal(t, cfg.Data.Features, c)
	assert.Len(t, ds.YTrain, r)
	tr, _ := ds.XTest.Dims()
	assert.Equal(t, cfg.Data.Samples-r, tr)

	a, err := ds.Partial(10)
	require.NoError(t, err)
	b, err := ds.Partial(10)
	require.NoError(t, err)
	assert.Equal(t, a, b, "the same budget hides the same samples")

	kept := 0
	for i, v := range a {
		if v != -1 {
			kept++
			assert.Equal(t, ds.YTrain[i], v)
		}
	}
	assert.Equal(t, 10, kept)

	_, err = ds.Partial(r + 1)
	assert.Error(t, err)
}

func TestNewEstimator(t *testing.T) {
	cfg := config.Default().Estimator
	est, err := experiment.NewEstimator(cfg)
	require.NoError(t, err)
	assert.IsType(t, &neighbors.KNN{}, est)

	cfg.Kind = config.EstimatorLogistic
	est, err = experiment.NewEstimator(cfg)
	require.NoError(t, err)
	lr, ok := est.(*linear.LogisticRegression)
	require.True(t, ok)
	assert.Equal(t, cfg.Epochs, lr.Epochs)

	cfg.Kind = "svm"
	_, err = experiment.NewEstimator(cfg)
	assert.ErrorContains(t, err, "svm")
}

func TestRunner_Run(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := experiment.NewRunner(smallConfig(), logging.Test(t), telemetry.NewMetrics(reg))
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, res.Labeled)
	assert.NotEqual(t, selftrain.TerminationNone, res.Termination)
	assert.Greater(t, res.Accuracy, 0.4)
	assert.LessOrEqual(t, res.Promoted, r.Dataset().XTrain.RawMatrix().Rows-12)

	n, err := testutil.GatherAndCount(reg, "selftrain_fits_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunner_Sweep(t *testing.T) {
	r, err := experiment.NewRunner(smallConfig(), nil, nil)
	require.NoError(t, err)

	results, err := r.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	seen := map[string]bool{}
	for i, th := range []float64{0.5, 0.9, 0.99} {
		assert.Equal(t, th, results[i].Threshold)
		seen[results[i].ID.String()] = true
	}
	assert.Len(t, seen, 3, "every run gets its own id")

	var buf bytes.Buffer
	experiment.WriteResults(&buf, results)
	assert.Contains(t, buf.String(), "THRESHOLD")
	assert.Contains(t, buf.String(), "0.99")
}

func TestRunner_SweepCancelled(t *testing.T) {
	r, err := experiment.NewRunner(smallConfig(), nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Sweep(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_Compare(t *testing.T) {
	r, err := experiment.NewRunner(smallConfig(), nil, nil)
	require.NoError(t, err)

	cmps, err := r.Compare(context.Background())
	require.NoError(t, err)
	require.Len(t, cmps, 3)
	for i, n := range []int{6, 12, 30} {
		assert.Equal(t, n, cmps[i].Labeled)
		assert.Equal(t, n, cmps[i].SelfTrain.Labeled)
		assert.InDelta(t, 0.5, cmps[i].Supervised.Accuracy, 0.5)
		assert.InDelta(t, 0.5, cmps[i].SelfTrain.Accuracy, 0.5)
	}

	var buf bytes.Buffer
	experiment.WriteComparisons(&buf, cmps)
	assert.Contains(t, buf.String(), "SELF-TRAINING ACC")
}
