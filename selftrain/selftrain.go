// SPDX-License-Identifier: MIT

package selftrain

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/plbecker/scikit-learn/labels"
)

// Classifier is a self-training wrapper around a probabilistic base estimator.
// L is the caller's label type; see package labels.
type Classifier[L labels.Label] struct {
	base        Estimator
	opts        Options
	sentinel    L
	hasSentinel bool

	// fitted state, rebuilt by every Fit
	estimator    ProbabilisticEstimator
	encoder      *labels.Encoder[L]
	transduction []int
	labeledIter  []int
	nIter        int
	termination  Termination
	warnings     []Warning
	fitted       bool
}

// New wraps base. Nothing is validated here; Fit reports every problem.
func New[L labels.Label](base Estimator, opts Options) *Classifier[L] {
	return &Classifier[L]{base: base, opts: opts}
}

// SetUnlabeled chooses the value of y that marks unlabeled samples.
// Without it Fit falls back to labels.DefaultUnlabeled.
func (c *Classifier[L]) SetUnlabeled(v L) *Classifier[L] {
	c.sentinel, c.hasSentinel = v, true

	return c
}

// Options returns the configuration the Classifier was built with.
func (c *Classifier[L]) Options() Options { return c.opts }

// Fit runs self-training on X (n×d) and y (len n).
//
// Implementation:
//   - Stage 1 (Validate config): estimator capability, options, sentinel.
//   - Stage 2 (Validate data): shapes, at least one labeled sample, encoding.
//   - Stage 3 (Degenerate): no unlabeled samples → one supervised fit.
//   - Stage 4 (Loop): fit on labeled rows, score unlabeled rows, promote the
//     most confident ones (capped), until a termination condition holds.
//   - Stage 5 (Finalize): refit on the final transduction when it grew since
//     the last fit.
//
// Errors:
//   - ErrInvalidArgument (and the specific sentinels wrapping it) before any
//     call reaches the base estimator.
//   - ErrProbaShape when the estimator's probabilities have the wrong shape.
//   - Base estimator errors, wrapped with the iteration they occurred in.
//
// On error the Classifier is left unfitted.
//
// Complexity: O(iterations × (fit + predict on ≤ n rows)) plus O(n log n) per iteration.
func (c *Classifier[L]) Fit(X mat.Matrix, y []L) error {
	c.reset()
	log := c.opts.logger()

	// Stage 1: configuration.
	est, err := c.validateConfig()
	if err != nil {
		return err
	}
	sentinel, err := c.resolveSentinel()
	if err != nil {
		return err
	}

	// Stage 2: data.
	if err = validateData(X, len(y)); err != nil {
		return err
	}
	enc := labels.NewEncoder(y, sentinel)
	if enc.Len() == 0 {
		return ErrNoLabeled
	}
	codes, err := enc.Encode(y)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if cl, ok := est.(Cloner); ok {
		if est, err = asProbabilistic(cl.Clone()); err != nil {
			return err
		}
	}

	st := newFitState(codes)
	k := enc.Len()
	log.Debug("self-training fit started",
		zap.Int("samples", len(codes)),
		zap.Int("classes", k),
		zap.Int("unlabeled", len(st.unlabeled)),
		zap.String("estimator", estimatorName(est)))

	// Stage 3: nothing to propagate.
	if len(st.unlabeled) == 0 {
		c.warn(WarnNoUnlabeled, "y contains no unlabeled samples")
		if err = est.Fit(X, codes); err != nil {
			return fmt.Errorf("selftrain: supervised fit: %w", err)
		}
		c.commit(est, enc, st, AllLabeled)

		return nil
	}

	// Stage 4: self-training loop.
	var (
		limit      = c.opts.promotionCap(len(st.unlabeled))
		noChange   int  // consecutive iterations without promotions
		lastFitted = -1 // labeled count at the last fit; the set only grows
		term       Termination
	)
	for {
		if c.nIter >= c.opts.MaxIter {
			term = MaxIter
			c.warn(WarnMaxIterReached, "maximum number of iterations reached before early stopping or full labeling")
			break
		}

		rows := st.labeledRows()
		if err = est.Fit(selectRows(X, rows), gatherCodes(st.codes, rows)); err != nil {
			return fmt.Errorf("selftrain: iteration %d: fit: %w", c.nIter+1, err)
		}
		lastFitted = st.labeled
		c.nIter++

		proba, err := est.PredictProba(selectRows(X, st.unlabeled))
		if err != nil {
			return fmt.Errorf("selftrain: iteration %d: predict proba: %w", c.nIter, err)
		}
		if err = checkProba(proba, len(st.unlabeled), k); err != nil {
			return fmt.Errorf("selftrain: iteration %d: %w", c.nIter, err)
		}

		confidence, class := scoreRows(proba)
		picks := selectConfident(confidence, class, c.opts.Threshold, limit)
		st.promote(picks, c.nIter)
		c.report(c.nIter, len(picks), len(st.unlabeled))

		if len(st.unlabeled) == 0 {
			term = AllLabeled
			break
		}
		if len(picks) > 0 {
			noChange = 0
			continue
		}
		if c.opts.earlyStopping() {
			noChange++
			if noChange >= c.opts.Patience {
				term = EarlyStopping
				break
			}
			continue
		}
		// Unbounded and no patience: the next pass would refit on the same set.
		if c.opts.unbounded() {
			term = EarlyStopping
			break
		}
	}

	// Stage 5: the exposed estimator reflects the final label assignment.
	if st.labeled != lastFitted {
		rows := st.labeledRows()
		if err = est.Fit(selectRows(X, rows), gatherCodes(st.codes, rows)); err != nil {
			return fmt.Errorf("selftrain: final fit: %w", err)
		}
	}
	c.commit(est, enc, st, term)
	log.Debug("self-training fit finished",
		zap.Stringer("termination", term),
		zap.Int("iterations", c.nIter),
		zap.Int("labeled", st.labeled),
		zap.Int("unlabeled", len(st.unlabeled)))

	return nil
}

// validateConfig checks the estimator and options, in that order, and emits
// the ineffective-early-stopping warning.
func (c *Classifier[L]) validateConfig() (ProbabilisticEstimator, error) {
	if c.base == nil {
		return nil, ErrNilEstimator
	}
	est, err := asProbabilistic(c.base)
	if err != nil {
		return nil, err
	}
	if err = c.opts.Validate(); err != nil {
		return nil, err
	}
	if c.opts.earlyStopping() && !c.opts.unbounded() && c.opts.Patience > c.opts.MaxIter {
		c.warn(WarnEarlyStoppingIneffective, fmt.Sprintf(
			"patience=%d > max_iter=%d: early stopping is ineffective, it cannot trigger before the iteration budget is exhausted",
			c.opts.Patience, c.opts.MaxIter))
	}

	return est, nil
}

func (c *Classifier[L]) resolveSentinel() (L, error) {
	if c.hasSentinel {
		return c.sentinel, nil
	}
	v, err := labels.DefaultUnlabeled[L]()
	if err != nil {
		return v, fmt.Errorf("%w (set one with SetUnlabeled): %w", ErrSentinel, err)
	}

	return v, nil
}

func asProbabilistic(e Estimator) (ProbabilisticEstimator, error) {
	if e == nil {
		return nil, ErrNilEstimator
	}
	p, ok := e.(ProbabilisticEstimator)
	if !ok {
		return nil, fmt.Errorf("base estimator (%s) should implement PredictProba: %w", estimatorName(e), ErrMissingPredictProba)
	}

	return p, nil
}

func validateData(X mat.Matrix, labelsLen int) error {
	if X == nil {
		return ErrEmptyInput
	}
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return ErrEmptyInput
	}
	if n != labelsLen {
		return fmt.Errorf("X has %d rows, y has %d labels: %w", n, labelsLen, ErrDimensionMismatch)
	}

	return nil
}

func (c *Classifier[L]) reset() {
	c.estimator = nil
	c.encoder = nil
	c.transduction = nil
	c.labeledIter = nil
	c.nIter = 0
	c.termination = TerminationNone
	c.warnings = nil
	c.fitted = false
}

func (c *Classifier[L]) commit(est ProbabilisticEstimator, enc *labels.Encoder[L], st *fitState, term Termination) {
	c.estimator = est
	c.encoder = enc
	c.transduction = st.codes
	c.labeledIter = st.iter
	c.termination = term
	c.fitted = true
}

func (c *Classifier[L]) warn(kind WarningKind, msg string) {
	c.warnings = append(c.warnings, Warning{Kind: kind, Message: msg})
	c.opts.logger().Warn(msg, zap.Stringer("kind", kind))
}

func (c *Classifier[L]) report(iteration, promoted, remaining int) {
	if c.opts.Progress != nil {
		c.opts.Progress(iteration, promoted)
	}
	if c.opts.Verbose {
		c.opts.logger().Info("self-training iteration complete",
			zap.Int("iteration", iteration),
			zap.Int("promoted", promoted),
			zap.Int("unlabeled", remaining))
	}
}
