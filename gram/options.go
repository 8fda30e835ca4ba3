// SPDX-License-Identifier: MIT
// Package: turing/gram
//
// options.go — functional options for Build.
//
// Contract (strict):
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics; it returns sentinel errors.
//   • newBuildConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • maxPoints      = 25            (24 Gram intervals + 1)
//   • maxSamples     = 24·128 + 2    (largest grid the CLI accepts)
//   • accuracyDigits = 16            (accuracy = 10⁻¹⁶ / 2)
//   • logger         = logrus logger writing to io.Discard

package gram

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Named defaults.
const (
	DefaultMaxPoints      = 25
	DefaultMaxSamples     = 24*128 + 2
	DefaultAccuracyDigits = 16

	maxAccuracyDigits = 300
)

// buildConfig aggregates the knobs used by Build.
type buildConfig struct {
	maxPoints      int
	maxSamples     int
	accuracyDigits int
	log            logrus.FieldLogger
}

// Option customizes Build.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*buildConfig)

// WithMaxPoints caps the number of reference points (countGram+1).
// Panics if n < 2.
func WithMaxPoints(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("gram: WithMaxPoints(%d): need at least 2", n))
	}
	return func(c *buildConfig) {
		c.maxPoints = n
	}
}

// WithMaxSamples caps the size of the flat sample grid (countGram·S+2).
// Panics if n < 3.
func WithMaxSamples(n int) Option {
	if n < 3 {
		panic(fmt.Sprintf("gram: WithMaxSamples(%d): need at least 3", n))
	}
	return func(c *buildConfig) {
		c.maxSamples = n
	}
}

// WithAccuracyDigits sets the evaluator accuracy to 10⁻ᵈ / 2.
// Panics if d ∉ [1, 300].
func WithAccuracyDigits(d int) Option {
	if d < 1 || d > maxAccuracyDigits {
		panic(fmt.Sprintf("gram: WithAccuracyDigits(%d): out of [1,%d]", d, maxAccuracyDigits))
	}
	return func(c *buildConfig) {
		c.accuracyDigits = d
	}
}

// WithLogger routes per-interval progress (debug level) to l.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("gram: WithLogger(nil)")
	}
	return func(c *buildConfig) {
		c.log = l
	}
}

// newBuildConfig resolves defaults and applies opts in order.
func newBuildConfig(opts ...Option) buildConfig {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	cfg := buildConfig{
		maxPoints:      DefaultMaxPoints,
		maxSamples:     DefaultMaxSamples,
		accuracyDigits: DefaultAccuracyDigits,
		log:            quiet,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
