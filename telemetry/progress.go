// SPDX-License-Identifier: MIT

package telemetry

import (
	"go.uber.org/zap"

	"github.com/plbecker/scikit-learn/selftrain"
)

// LogReporter logs every iteration at Debug level. A nil logger yields a no-op.
func LogReporter(log *zap.Logger) selftrain.ProgressFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(iteration, promoted int) {
		log.Debug("self-training progress",
			zap.Int("iteration", iteration),
			zap.Int("promoted", promoted))
	}
}

// Chain calls every non-nil fn in order. It returns nil when none remain,
// which leaves selftrain.Options.Progress unset.
func Chain(fns ...selftrain.ProgressFunc) selftrain.ProgressFunc {
	live := make([]selftrain.ProgressFunc, 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			live = append(live, fn)
		}
	}
	if len(live) == 0 {
		return nil
	}

	return func(iteration, promoted int) {
		for _, fn := range live {
			fn(iteration, promoted)
		}
	}
}
