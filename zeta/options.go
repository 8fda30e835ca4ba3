// SPDX-License-Identifier: MIT
// Package: turing/zeta
//
// options.go — functional options for RiemannSiegel.
//
// Option constructors panic on meaningless input; evaluator methods never panic.

package zeta

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Defaults for RiemannSiegel.
const (
	// DefaultMaxIterations caps Newton's method for one Gram point.
	DefaultMaxIterations = 64

	// guardBits are carried on top of the run precision during θ and Newton.
	guardBits = 32
)

type rsConfig struct {
	maxIter int
	log     logrus.FieldLogger
}

// Option customizes NewRiemannSiegel.
type Option func(*rsConfig)

// WithMaxIterations caps the Newton iterations per Gram point. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("zeta: WithMaxIterations(%d)", n))
	}
	return func(c *rsConfig) {
		c.maxIter = n
	}
}

// WithLogger routes debug traces to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("zeta: WithLogger(nil)")
	}
	return func(c *rsConfig) {
		c.log = l
	}
}

func newRSConfig(opts ...Option) rsConfig {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	cfg := rsConfig{maxIter: DefaultMaxIterations, log: quiet}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
