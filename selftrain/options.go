// SPDX-License-Identifier: MIT

package selftrain

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Defaults (single source of truth for DefaultOptions).
const (
	// DefaultThreshold is the confidence a prediction must exceed to be promoted.
	DefaultThreshold = 0.75

	// DefaultMaxIter bounds the number of self-training iterations.
	DefaultMaxIter = 10

	// NoIterationLimit as MaxIter lets the loop run until another stop condition.
	NoIterationLimit = math.MaxInt

	// EarlyStoppingDisabled as Patience turns early stopping off.
	EarlyStoppingDisabled = 0

	// DefaultPromotionFraction caps promotions per iteration relative to the
	// number of samples unlabeled when Fit started.
	DefaultPromotionFraction = 0.10

	// DefaultMinPromotions is the floor of the per-iteration cap.
	DefaultMinPromotions = 1
)

// Options configures a Classifier. Start from DefaultOptions: the zero value
// is not a valid configuration.
type Options struct {
	// Threshold in [0,1). Only predictions with confidence strictly above it
	// are promoted.
	Threshold float64

	// MaxIter ≥ 0, or NoIterationLimit. 0 degenerates to a supervised fit
	// on the originally labeled samples.
	MaxIter int

	// Patience > 0 stops after that many consecutive iterations without
	// promotions; EarlyStoppingDisabled turns it off.
	Patience int

	// PromotionFraction in (0,1]: at most floor(fraction × initially unlabeled)
	// samples are promoted per iteration. 1 promotes everything that qualifies.
	PromotionFraction float64

	// MinPromotions ≥ 1 is the floor applied when the fraction rounds lower.
	MinPromotions int

	// Verbose narrates every iteration through Logger at Info level.
	Verbose bool

	// Progress, when non-nil, is called once per iteration.
	Progress ProgressFunc

	// Logger receives warnings and narration; nil means zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Threshold:         DefaultThreshold,
		MaxIter:           DefaultMaxIter,
		Patience:          EarlyStoppingDisabled,
		PromotionFraction: DefaultPromotionFraction,
		MinPromotions:     DefaultMinPromotions,
	}
}

// Validate checks every numeric option.
// Implementation:
//   - Stage 1: threshold (finite, 0 ≤ t < 1).
//   - Stage 2: iteration budget and patience.
//   - Stage 3: promotion policy.
//
// Returns the first violation, wrapped with the offending value.
func (o Options) Validate() error {
	// Stage 1: a threshold of 1 can never be exceeded by a probability.
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold >= 1 {
		return fmt.Errorf("threshold=%v: %w", o.Threshold, ErrThreshold)
	}

	// Stage 2: budget and patience.
	if o.MaxIter < 0 {
		return fmt.Errorf("max_iter=%d: %w", o.MaxIter, ErrMaxIter)
	}
	if o.Patience < 0 {
		return fmt.Errorf("patience=%d: %w", o.Patience, ErrPatience)
	}

	// Stage 3: promotion cap.
	if math.IsNaN(o.PromotionFraction) || o.PromotionFraction <= 0 || o.PromotionFraction > 1 {
		return fmt.Errorf("promotion_fraction=%v: %w", o.PromotionFraction, ErrPromotionPolicy)
	}
	if o.MinPromotions < 1 {
		return fmt.Errorf("min_promotions=%d: %w", o.MinPromotions, ErrPromotionPolicy)
	}

	return nil
}

func (o Options) unbounded() bool { return o.MaxIter == NoIterationLimit }

func (o Options) earlyStopping() bool { return o.Patience != EarlyStoppingDisabled }

// promotionCap is max(floor(fraction × initialUnlabeled), MinPromotions).
func (o Options) promotionCap(initialUnlabeled int) int {
	limit := int(math.Floor(o.PromotionFraction * float64(initialUnlabeled)))
	if limit < o.MinPromotions {
		return o.MinPromotions
	}

	return limit
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
