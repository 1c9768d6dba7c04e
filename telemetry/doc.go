// SPDX-License-Identifier: MIT

// Package telemetry turns self-training progress into Prometheus series and
// structured log lines.
//
// Both sinks plug into selftrain.Options.Progress; Chain combines them.
//
//	m := telemetry.NewMetrics(prometheus.NewRegistry())
//	opts.Progress = telemetry.Chain(m.Reporter("t=0.75"), telemetry.LogReporter(log))
//	err := st.Fit(X, y)
//	m.ObserveFit("t=0.75", st.Termination(), st.NIter(), err)
package telemetry
