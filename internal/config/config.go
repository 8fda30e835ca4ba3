// SPDX-License-Identifier: MIT
// Package: turing/internal/config
//
// config.go — RunConfig, its defaults and validation.
//
// Contract:
//   • SetDefaults registers every key, so environment overrides reach Load.
//   • Validate never mutates; Decimals derives the effective output precision.
//   • Errors: every validation failure wraps gram.ErrConfig.

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/turing/gram"
	"github.com/katalvlaran/turing/internal/logging"
	"github.com/katalvlaran/turing/precision"
	"github.com/katalvlaran/turing/report"
)

// Keys shared by flags, environment variables and config files.
const (
	KeyTarget      = "target"
	KeyCountGram   = "gram"
	KeySamples     = "count"
	KeyDecimals    = "decimals"
	KeyBits        = "bits"
	KeyDebugFlags  = "debug"
	KeyThreads     = "threads"
	KeyShowSeconds = "seconds"
	KeyVerbose     = "verbose"
	KeyEvaluator   = "evaluator"
	KeyFormat      = "format"
	KeyLogLevel    = "log_level"
)

// Evaluator names.
const (
	EvaluatorRiemannSiegel = "riemann-siegel"
	EvaluatorSynthetic     = "synthetic"
)

// Accepted ranges and defaults.
const (
	MinCountGram, MaxCountGram, DefaultCountGram = 1, 24, 8
	MinSamples, MaxSamples, DefaultSamples       = 8, 128, 8
	MinDecimals, MaxDecimals, DefaultDecimals    = 2, 60, 6
	MinBits, MaxBits, DefaultBits                = 128, 1024, 256
	MinThreads, MaxThreads, DefaultThreads       = 1, 8, 1
	DefaultDebugFlags                            = 2311
)

// RunConfig is the full set of run parameters.
type RunConfig struct {
	Target             string `mapstructure:"target" yaml:"target"`
	CountGram          int    `mapstructure:"gram" yaml:"gram"`
	SamplesPerInterval int    `mapstructure:"count" yaml:"count"`
	OutputDP           int    `mapstructure:"decimals" yaml:"decimals"`
	PrecisionBits      int    `mapstructure:"bits" yaml:"bits"`
	DebugFlags         int    `mapstructure:"debug" yaml:"debug"`
	Threads            int    `mapstructure:"threads" yaml:"threads"`
	ShowSeconds        bool   `mapstructure:"seconds" yaml:"seconds"`
	Verbose            bool   `mapstructure:"verbose" yaml:"verbose"`
	Evaluator          string `mapstructure:"evaluator" yaml:"evaluator"`
	Format             string `mapstructure:"format" yaml:"format"`
	LogLevel           string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when nothing is overridden.
func Default() RunConfig {
	return RunConfig{
		CountGram:          DefaultCountGram,
		SamplesPerInterval: DefaultSamples,
		OutputDP:           DefaultDecimals,
		PrecisionBits:      DefaultBits,
		DebugFlags:         DefaultDebugFlags,
		Threads:            DefaultThreads,
		Evaluator:          EvaluatorRiemannSiegel,
		Format:             string(report.FormatText),
	}
}

// SetDefaults registers Default() on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyTarget, d.Target)
	v.SetDefault(KeyCountGram, d.CountGram)
	v.SetDefault(KeySamples, d.SamplesPerInterval)
	v.SetDefault(KeyDecimals, d.OutputDP)
	v.SetDefault(KeyBits, d.PrecisionBits)
	v.SetDefault(KeyDebugFlags, d.DebugFlags)
	v.SetDefault(KeyThreads, d.Threads)
	v.SetDefault(KeyShowSeconds, d.ShowSeconds)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyEvaluator, d.Evaluator)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// Load decodes v into a RunConfig and validates it.
func Load(v *viper.Viper) (RunConfig, error) {
	var cfg RunConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("Load: %w: %w", gram.ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}

	return cfg, nil
}

// Validate checks every field against its accepted range.
func (c RunConfig) Validate() error {
	const method = "Validate"

	if c.Target == "" {
		return fmt.Errorf("%s: target is required: %w", method, gram.ErrConfig)
	}
	if err := precision.ValidateDecimal(c.Target); err != nil {
		return fmt.Errorf("%s: target %q: %w: %w", method, c.Target, gram.ErrConfig, err)
	}

	ranges := []struct {
		name     string
		val      int
		min, max int
	}{
		{KeyCountGram, c.CountGram, MinCountGram, MaxCountGram},
		{KeySamples, c.SamplesPerInterval, MinSamples, MaxSamples},
		{KeyDecimals, c.OutputDP, MinDecimals, MaxDecimals},
		{KeyBits, c.PrecisionBits, MinBits, MaxBits},
		{KeyThreads, c.Threads, MinThreads, MaxThreads},
	}
	for _, r := range ranges {
		if r.val < r.min || r.val > r.max {
			return fmt.Errorf("%s: %s=%d outside [%d, %d]: %w", method, r.name, r.val, r.min, r.max, gram.ErrConfig)
		}
	}

	switch c.Evaluator {
	case EvaluatorRiemannSiegel, EvaluatorSynthetic:
	default:
		return fmt.Errorf("%s: evaluator %q: %w", method, c.Evaluator, gram.ErrConfig)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%s: %w: %w", method, gram.ErrConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel, c.Verbose); err != nil {
		return fmt.Errorf("%s: %w: %w", method, gram.ErrConfig, err)
	}

	return nil
}

// Decimals is OutputDP raised to the number of decimals written in Target.
func (c RunConfig) Decimals() int {
	if dp := precision.DecimalPlaces(c.Target); dp > c.OutputDP {
		return dp
	}

	return c.OutputDP
}
