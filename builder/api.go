// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// api.go — Generate, the single entry point of the package.
//
// Flow:
//  1. Resolve options over deterministic defaults (newBuilderConfig).
//  2. Validate size, rule, edge bounds, options and RNG (validateGenerate).
//  3. Dispatch to the configured Strategy.
//
// Every returned error wraps one of the sentinels in errors.go.

package builder

import (
	"github.com/katalvlaran/adjpower/matrix"
)

// Result describes one successful generation.
type Result struct {
	// Matrix is the n×n adjacency matrix; cells are 0 or 1.
	Matrix *matrix.Dense
	// Rule and Strategy echo the request.
	Rule     Rule
	Strategy Strategy
	// Attempts is the number of full matrices drawn (always 1 for SpanningFirst).
	Attempts int
	// Components is 1 for n > 0 and 0 for the empty matrix.
	Components int
}

// Generate draws a random n×n adjacency matrix with exactly edges placements
// under rule whose component count (per WithConnectivity) is 1.
//
// Preconditions: n ≥ 0 and rule.MinEdges(n) ≤ edges ≤ rule.MaxEdges(n).
// n == 0 yields an empty matrix with 0 components and no draws.
//
// Errors: ErrTooFewVertices, ErrUnknownRule, ErrEdgeCount, ErrOptionViolation,
// ErrNeedRandSource, ErrNonTerminatingGeneration (Rejection only).
func Generate(n, edges int, rule Rule, opts ...BuilderOption) (*Result, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateGenerate(n, edges, rule, cfg); err != nil {
		return nil, err
	}
	if n == 0 {
		m, err := matrix.NewSquare(0)
		if err != nil {
			return nil, err
		}

		return &Result{Matrix: m, Rule: rule, Strategy: cfg.strategy}, nil
	}

	switch cfg.strategy {
	case SpanningFirst:
		return generateSpanning(n, edges, rule, cfg)
	default:
		return generateRejection(n, edges, rule, cfg)
	}
}
