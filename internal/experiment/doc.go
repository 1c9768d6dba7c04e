// SPDX-License-Identifier: MIT

// Package experiment runs self-training experiments on synthetic data for
// cmd/selftrain: a single fit, a threshold sweep, and a comparison against a
// purely supervised baseline over several labeled budgets.
package experiment
