package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plbecker/scikit-learn/internal/config"
	"github.com/plbecker/scikit-learn/selftrain"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.NoError(t, cfg.SelfTrain.Options().Validate())
	assert.Equal(t, 210, cfg.Data.TrainSamples())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	raw := []byte(`
data:
  samples: 120
  labeled: 12
compare:
  labeled_counts: [12, 40]
selftrain:
  threshold: 0.9
  unbounded: true
  patience: 3
estimator:
  kind: logistic
  epochs: 50
logging:
  level: debug
metrics:
  textfile: /tmp/selftrain.prom
`)
	cfg, err := config.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Data.Samples)
	assert.Equal(t, 3, cfg.Data.Centers, "untouched fields keep defaults")
	assert.Equal(t, config.EstimatorLogistic, cfg.Estimator.Kind)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/selftrain.prom", cfg.Metrics.Textfile)

	opts := cfg.SelfTrain.Options()
	assert.Equal(t, 0.9, opts.Threshold)
	assert.Equal(t, selftrain.NoIterationLimit, opts.MaxIter)
	assert.Equal(t, 3, opts.Patience)
	assert.Nil(t, opts.Logger)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":         "selftrain:\n  treshold: 0.5\n",
		"threshold one":       "selftrain:\n  threshold: 1\n",
		"negative patience":   "selftrain:\n  patience: -1\n",
		"fraction zero":       "selftrain:\n  promotion_fraction: 0\n",
		"estimator kind":      "estimator:\n  kind: svm\n",
		"empty sweep":         "sweep:\n  thresholds: []\n",
		"sweep threshold":     "sweep:\n  thresholds: [0.5, 1.2]\n",
		"log level":           "logging:\n  level: loud\n",
		"labeled over train":  "data:\n  samples: 20\n  labeled: 19\n",
		"k over labeled":      "data:\n  labeled: 3\n",
		"compare over train":  "compare:\n  labeled_counts: [5000]\n",
		"k over compare":      "compare:\n  labeled_counts: [2]\n",
		"test fraction":       "data:\n  test_fraction: 1\n",
		"bad yaml":            "data: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestParse_ValidationErrorsAreTyped(t *testing.T) {
	_, err := config.Parse([]byte("selftrain:\n  threshold: 1\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sweep:\n  workers: 2\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Sweep.Workers)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
