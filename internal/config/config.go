// SPDX-License-Identifier: MIT

// Package config loads the YAML experiment files read by cmd/selftrain.
//
// Every field has a default (Default), so a file only lists what it changes.
// Unknown keys are rejected; values are checked with struct tags and a few
// cross-field rules in Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/plbecker/scikit-learn/internal/logging"
	"github.com/plbecker/scikit-learn/selftrain"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Estimator kinds.
const (
	EstimatorKNN      = "knn"
	EstimatorLogistic = "logistic"
)

// Config is one experiment.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	SelfTrain SelfTrainConfig `yaml:"selftrain"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Sweep     SweepConfig     `yaml:"sweep"`
	Compare   CompareConfig   `yaml:"compare"`
	Logging   logging.Config  `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// DataConfig describes the synthetic dataset and the labeled budget.
type DataConfig struct {
	Samples    int     `yaml:"samples" validate:"gte=4"`
	Features   int     `yaml:"features" validate:"gte=1"`
	Centers    int     `yaml:"centers" validate:"gte=2"`
	ClusterStd float64 `yaml:"cluster_std" validate:"gt=0"`
	Seed       int64   `yaml:"seed"`

	// Labeled is how many training labels stay visible.
	Labeled int `yaml:"labeled" validate:"gte=1"`

	// TestFraction of the samples is held out for scoring.
	TestFraction float64 `yaml:"test_fraction" validate:"gt=0,lt=1"`
}

// SelfTrainConfig mirrors selftrain.Options.
type SelfTrainConfig struct {
	Threshold float64 `yaml:"threshold" validate:"gte=0,lt=1"`
	MaxIter   int     `yaml:"max_iter" validate:"gte=0"`

	// Unbounded ignores MaxIter.
	Unbounded bool `yaml:"unbounded"`

	// Patience 0 disables early stopping.
	Patience          int     `yaml:"patience" validate:"gte=0"`
	PromotionFraction float64 `yaml:"promotion_fraction" validate:"gt=0,lte=1"`
	MinPromotions     int     `yaml:"min_promotions" validate:"gte=1"`
	Verbose           bool    `yaml:"verbose"`
}

// EstimatorConfig selects and parameterizes the base estimator.
type EstimatorConfig struct {
	Kind string `yaml:"kind" validate:"oneof=knn logistic"`

	// knn
	K       int `yaml:"k" validate:"gte=1"`
	Workers int `yaml:"workers" validate:"gte=0"`

	// logistic
	LearningRate float64 `yaml:"learning_rate" validate:"gt=0"`
	Epochs       int     `yaml:"epochs" validate:"gte=1"`
	L2           float64 `yaml:"l2" validate:"gte=0"`
}

// SweepConfig drives the threshold sweep.
type SweepConfig struct {
	Thresholds []float64 `yaml:"thresholds" validate:"min=1,dive,gte=0,lt=1"`
	Workers    int       `yaml:"workers" validate:"gte=1,lte=64"`
}

// CompareConfig drives the supervised versus self-training comparison.
type CompareConfig struct {
	LabeledCounts []int `yaml:"labeled_counts" validate:"min=1,dive,gte=1"`
	Workers       int   `yaml:"workers" validate:"gte=1,lte=64"`
}

// MetricsConfig controls Prometheus output.
type MetricsConfig struct {
	// Textfile, when set, receives the registry in text exposition format
	// after the command finishes.
	Textfile string `yaml:"textfile"`
}

var validate = validator.New()

// Default returns a complete, valid configuration.
func Default() Config {
	opts := selftrain.DefaultOptions()

	return Config{
		Data: DataConfig{
			Samples:      300,
			Features:     2,
			Centers:      3,
			ClusterStd:   1.5,
			Seed:         42,
			Labeled:      20,
			TestFraction: 0.3,
		},
		SelfTrain: SelfTrainConfig{
			Threshold:         opts.Threshold,
			MaxIter:           opts.MaxIter,
			Patience:          opts.Patience,
			PromotionFraction: opts.PromotionFraction,
			MinPromotions:     opts.MinPromotions,
		},
		Estimator: EstimatorConfig{
			Kind:         EstimatorKNN,
			K:            5,
			LearningRate: 0.5,
			Epochs:       300,
			L2:           1e-3,
		},
		Sweep: SweepConfig{
			Thresholds: []float64{0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 0.99},
			Workers:    4,
		},
		Compare: CompareConfig{
			LabeledCounts: []int{10, 20, 50, 100},
			Workers:       4,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes raw YAML over Default and validates the result.
// An empty document yields the defaults.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field tags, then the rules spanning several sections.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	train := c.Data.TrainSamples()
	if train < 2 || train >= c.Data.Samples {
		return fmt.Errorf("%w: test_fraction=%v leaves %d of %d samples for training",
			ErrInvalid, c.Data.TestFraction, train, c.Data.Samples)
	}
	if c.Data.Labeled > train {
		return fmt.Errorf("%w: labeled=%d exceeds %d training samples", ErrInvalid, c.Data.Labeled, train)
	}
	for _, n := range c.Compare.LabeledCounts {
		if n > train {
			return fmt.Errorf("%w: compare labeled count %d exceeds %d training samples", ErrInvalid, n, train)
		}
		if c.Estimator.Kind == EstimatorKNN && c.Estimator.K > n {
			return fmt.Errorf("%w: k=%d exceeds compare labeled count %d", ErrInvalid, c.Estimator.K, n)
		}
	}
	if c.Estimator.Kind == EstimatorKNN && c.Estimator.K > c.Data.Labeled {
		return fmt.Errorf("%w: k=%d exceeds labeled=%d", ErrInvalid, c.Estimator.K, c.Data.Labeled)
	}

	return nil
}

// TrainSamples is the number of samples left after the holdout.
func (d DataConfig) TrainSamples() int {
	return d.Samples - int(float64(d.Samples)*d.TestFraction)
}

// Options converts the section into selftrain.Options, without logger or
// progress callback.
func (s SelfTrainConfig) Options() selftrain.Options {
	opts := selftrain.DefaultOptions()
	opts.Threshold = s.Threshold
	opts.MaxIter = s.MaxIter
	if s.Unbounded {
		opts.MaxIter = selftrain.NoIterationLimit
	}
	opts.Patience = s.Patience
	opts.PromotionFraction = s.PromotionFraction
	opts.MinPromotions = s.MinPromotions
	opts.Verbose = s.Verbose

	return opts
}
