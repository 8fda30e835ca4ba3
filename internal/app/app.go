// SPDX-License-Identifier: MIT
// Package: turing/internal/app
//
// app.go — one end-to-end run: grid, analysis, threshold, report.
//
// Contract:
//   • The precision context lives exactly as long as Run.
//   • The grid is self-checked with Table.Verify before analysis.
//   • Errors from every stage are returned wrapped; nothing is printed on failure.

package app

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/turing/analysis"
	"github.com/katalvlaran/turing/gram"
	"github.com/katalvlaran/turing/internal/config"
	"github.com/katalvlaran/turing/precision"
	"github.com/katalvlaran/turing/report"
	"github.com/katalvlaran/turing/threshold"
	"github.com/katalvlaran/turing/zeta"
)

type runOptions struct {
	synthetic []zeta.SyntheticOption
}

// Option customizes Run.
type Option func(*runOptions)

// WithSyntheticOptions configures the synthetic evaluator when it is selected.
func WithSyntheticOptions(opts ...zeta.SyntheticOption) Option {
	return func(o *runOptions) {
		o.synthetic = append(o.synthetic, opts...)
	}
}

// Run executes cfg and writes the report to out in cfg.Format.
// The assembled report is returned as well.
func Run(cfg config.RunConfig, out io.Writer, log logrus.FieldLogger, opts ...Option) (*report.Report, error) {
	const method = "Run"

	var ro runOptions
	for _, opt := range opts {
		opt(&ro)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	start := time.Now()

	ctx, err := precision.New(uint(cfg.PrecisionBits), cfg.Threads, cfg.DebugFlags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer func() { _ = ctx.Close() }()

	ev, err := newEvaluator(cfg.Evaluator, ctx, log, ro)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	log.WithFields(logrus.Fields{
		"evaluator": cfg.Evaluator,
		"bits":      cfg.PrecisionBits,
		"threads":   cfg.Threads,
	}).Debug("evaluator ready")

	tb, err := gram.Build(ctx, ev, gram.Request{
		Target:             cfg.Target,
		CountGram:          cfg.CountGram,
		SamplesPerInterval: cfg.SamplesPerInterval,
	}, gram.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err = tb.Verify(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	res, err := analysis.Analyze(tb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	k, err := threshold.K(tb.Points[0].Location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	r, err := report.Assemble(tb, res, k,
		report.WithDecimals(cfg.Decimals()),
		report.WithTarget(cfg.Target),
		report.WithVerbose(cfg.Verbose),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if cfg.ShowSeconds {
		r.ElapsedSeconds = time.Since(start).Seconds()
	}

	log.WithFields(logrus.Fields{
		"k":          k,
		"mismatches": r.Summary.Mismatches,
		"lehmer":     r.Summary.LehmerFlags,
	}).Info("analysis complete")

	if err = report.Write(out, r, format); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return r, nil
}

// newEvaluator builds the evaluator named by name.
func newEvaluator(name string, ctx *precision.Context, log logrus.FieldLogger, ro runOptions) (gram.Evaluator, error) {
	switch name {
	case config.EvaluatorRiemannSiegel:
		rs, err := zeta.NewRiemannSiegel(ctx, zeta.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return rs, nil
	case config.EvaluatorSynthetic:
		s, err := zeta.NewSynthetic(ctx, ro.synthetic...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("evaluator %q: %w", name, gram.ErrConfig)
}
