// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the command line tools.
//
// Libraries in this module take a *zap.Logger through their options and
// never build one themselves; only main packages call New.
package logging

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Config selects the level and output format.
type Config struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`

	// Development switches to the human-readable console encoder.
	Development bool `yaml:"development"`
}

// DefaultConfig logs at info level in production (JSON) format.
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// New returns a logger for c.
func New(c Config) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if c.Level != "" {
		if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("logging: level %q: %w", c.Level, err)
		}
	}

	return NewWith(c.Development, func(cfg *zap.Config) {
		cfg.Level.SetLevel(lvl)
	})
}

// NewWith returns a logger from a modified zap.Config.
func NewWith(development bool, cfgFn func(*zap.Config)) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfgFn(&cfg)
	lggr, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return lggr, nil
}

// Test returns a debug-level logger writing to tb.
func Test(tb testing.TB) *zap.Logger {
	tb.Helper()

	return zaptest.NewLogger(tb, zaptest.Level(zapcore.DebugLevel))
}

// TestObserved returns a logger writing to tb that also records entries at
// lvl and above.
func TestObserved(tb testing.TB, lvl zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return zaptest.NewLogger(tb, zaptest.WrapOptions(observe, zap.AddCaller())), logs
}
