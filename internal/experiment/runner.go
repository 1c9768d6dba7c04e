// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/plbecker/scikit-learn/internal/config"
	"github.com/plbecker/scikit-learn/metrics"
	"github.com/plbecker/scikit-learn/selftrain"
	"github.com/plbecker/scikit-learn/telemetry"
)

// Result is the outcome of one self-training fit scored on the holdout.
type Result struct {
	ID          uuid.UUID
	Threshold   float64
	Labeled     int
	Termination selftrain.Termination
	Iterations  int
	Promoted    int // samples pseudo-labeled during the fit
	Accuracy    float64
	MacroF1     float64
}

// Comparison pairs a supervised fit on the visible labels with a
// self-training fit on the same split.
type Comparison struct {
	Labeled    int
	Supervised Score
	SelfTrain  Result
}

// Score is holdout accuracy and macro F1.
type Score struct {
	Accuracy float64
	MacroF1  float64
}

// Runner executes experiments on one prepared dataset.
type Runner struct {
	cfg     config.Config
	data    Dataset
	log     *zap.Logger
	metrics *telemetry.Metrics
}

// NewRunner prepares the dataset of cfg. m may be nil; a nil log means zap.NewNop().
func NewRunner(cfg config.Config, log *zap.Logger, m *telemetry.Metrics) (*Runner, error) {
	if log == nil {
		log = zap.NewNop()
	}
	data, err := Prepare(cfg.Data)
	if err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, data: data, log: log, metrics: m}, nil
}

// Dataset returns the prepared split.
func (r *Runner) Dataset() Dataset { return r.data }

// Run fits once with the configured threshold and labeled budget.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return r.fit(r.cfg.SelfTrain.Threshold, r.cfg.Data.Labeled)
}

// Sweep fits once per configured threshold, concurrently. Results keep the
// order of the thresholds. The first error cancels the remaining fits.
//
// Implementation:
//   - Stage 1: one job per threshold, each with its own estimator and Classifier.
//   - Stage 2: errgroup bounded by Sweep.Workers; jobs check ctx before starting.
func (r *Runner) Sweep(ctx context.Context) ([]Result, error) {
	thresholds := r.cfg.Sweep.Thresholds
	out := make([]Result, len(thresholds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Sweep.Workers)
	for i, th := range thresholds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.fit(th, r.cfg.Data.Labeled)
			if err != nil {
				return fmt.Errorf("threshold %v: %w", th, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("experiment: sweep: %w", err)
	}

	return out, nil
}

// Compare fits a supervised baseline and a self-training classifier for every
// configured labeled count, concurrently.
func (r *Runner) Compare(ctx context.Context) ([]Comparison, error) {
	counts := r.cfg.Compare.LabeledCounts
	out := make([]Comparison, len(counts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Compare.Workers)
	for i, n := range counts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sup, err := r.supervised(n)
			if err != nil {
				return fmt.Errorf("labeled %d: supervised: %w", n, err)
			}
			st, err := r.fit(r.cfg.SelfTrain.Threshold, n)
			if err != nil {
				return fmt.Errorf("labeled %d: %w", n, err)
			}
			out[i] = Comparison{Labeled: n, Supervised: sup, SelfTrain: st}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("experiment: compare: %w", err)
	}

	return out, nil
}

// fit runs one self-training fit and scores it.
func (r *Runner) fit(threshold float64, labeled int) (Result, error) {
	res := Result{ID: uuid.New(), Threshold: threshold, Labeled: labeled}
	run := "t=" + strconv.FormatFloat(threshold, 'f', -1, 64) + ",l=" + strconv.Itoa(labeled)
	log := r.log.With(zap.Stringer("run_id", res.ID), zap.String("run", run))

	y, err := r.data.Partial(labeled)
	if err != nil {
		return res, err
	}
	base, err := NewEstimator(r.cfg.Estimator)
	if err != nil {
		return res, err
	}

	opts := r.cfg.SelfTrain.Options()
	opts.Threshold = threshold
	opts.Logger = log
	opts.Progress = telemetry.LogReporter(log)
	if r.metrics != nil {
		opts.Progress = telemetry.Chain(r.metrics.Reporter(run), opts.Progress)
	}

	st := selftrain.New[int](base, opts)
	err = st.Fit(r.data.XTrain, y)
	if r.metrics != nil {
		r.metrics.ObserveFit(run, st.Termination(), st.NIter(), err)
	}
	if err != nil {
		return res, err
	}

	res.Termination, res.Iterations = st.Termination(), st.NIter()
	for _, it := range st.LabeledIter() {
		if it > 0 {
			res.Promoted++
		}
	}
	pred, err := st.Predict(r.data.XTest)
	if err != nil {
		return res, err
	}
	sc, err := score(r.data.YTest, pred)
	if err != nil {
		return res, err
	}
	res.Accuracy, res.MacroF1 = sc.Accuracy, sc.MacroF1
	log.Info("fit scored",
		zap.Stringer("termination", res.Termination),
		zap.Int("iterations", res.Iterations),
		zap.Int("promoted", res.Promoted),
		zap.Float64("accuracy", res.Accuracy))

	return res, nil
}

// supervised trains the base estimator on the visible labels only.
func (r *Runner) supervised(labeled int) (Score, error) {
	y, err := r.data.Partial(labeled)
	if err != nil {
		return Score{}, err
	}
	base, err := NewEstimator(r.cfg.Estimator)
	if err != nil {
		return Score{}, err
	}
	X, codes := labeledSubset(r.data.XTrain, y)
	if err = base.Fit(X, codes); err != nil {
		return Score{}, err
	}
	pred, err := base.Predict(r.data.XTest)
	if err != nil {
		return Score{}, err
	}

	return score(r.data.YTest, pred)
}

func score(truth, pred []int) (Score, error) {
	acc, err := metrics.Accuracy(truth, pred)
	if err != nil {
		return Score{}, err
	}
	f1, err := metrics.MacroF1(truth, pred)
	if err != nil {
		return Score{}, err
	}

	return Score{Accuracy: acc, MacroF1: f1}, nil
}
