// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generation knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • Invalid enum values are recorded and surfaced by Generate as
//     ErrOptionViolation; nil pointers panic in the option constructor.
//
// Deterministic defaults:
//   • rng          = nil            (Generate requires WithSeed/WithRand)
//   • maxAttempts  = DefaultMaxAttempts
//   • strategy     = Rejection
//   • connectivity = bfs.Weak
//   • logger       = slog discard handler

package builder

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/adjpower/bfs"
)

// Strategy picks how Generate guarantees a single component.
type Strategy uint8

const (
	// Rejection regenerates the whole matrix until it is connected.
	Rejection Strategy = iota
	// SpanningFirst lays a random arborescence rooted at vertex 0 and then
	// places the remaining edges; connected by construction, one attempt.
	SpanningFirst
)

// String returns "rejection" or "spanning".
func (s Strategy) String() string {
	switch s {
	case Rejection:
		return "rejection"
	case SpanningFirst:
		return "spanning"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps "rejection" / "spanning" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "rejection", "":
		return Rejection, nil
	case "spanning":
		return SpanningFirst, nil
	default:
		return 0, fmt.Errorf("builder: strategy %q: %w", name, ErrOptionViolation)
	}
}

// builderConfig aggregates all knobs used by Generate.
// It is passed by VALUE to strategies (immutable to callers).
type builderConfig struct {
	// RNG for every random draw; nil is rejected by Generate.
	rng *rand.Rand
	// Upper bound on full regenerations in the Rejection strategy.
	maxAttempts int
	// How connectivity is guaranteed.
	strategy Strategy
	// Traversal mode used to count components.
	connectivity bfs.Mode
	// Sink for attempt/exhaustion records.
	logger *slog.Logger
	// First option violation recorded during resolution.
	err error
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		maxAttempts:  DefaultMaxAttempts,
		strategy:     Rejection,
		connectivity: bfs.Weak,
		logger:       slog.New(slog.DiscardHandler),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
