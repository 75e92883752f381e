// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// options.go — functional options for Generate.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on nil pointers and meaningless numbers.
//   • Unknown enum values are deferred and reported as ErrOptionViolation.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/adjpower/bfs"
)

// BuilderOption customizes generation by mutating a builderConfig instance
// before any edge is placed.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts bounds the Rejection strategy. Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}

// WithStrategy selects Rejection (default) or SpanningFirst.
func WithStrategy(s Strategy) BuilderOption {
	return func(c *builderConfig) {
		if s != Rejection && s != SpanningFirst {
			c.err = fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, s)
			return
		}
		c.strategy = s
	}
}

// WithConnectivity sets the traversal mode used to decide that a generated
// matrix is connected. Default bfs.Weak.
func WithConnectivity(m bfs.Mode) BuilderOption {
	return func(c *builderConfig) {
		if m != bfs.Weak && m != bfs.Forward {
			c.err = fmt.Errorf("%w: unknown connectivity %v", ErrOptionViolation, m)
			return
		}
		c.connectivity = m
	}
}

// WithLogger routes attempt records to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
