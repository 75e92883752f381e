// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// impl_rejection.go — whole-matrix rejection sampling.
//
// Each attempt starts from a zero matrix, places exactly edges placements and
// counts components; the first attempt with a single component wins. The loop
// is bounded by maxAttempts and ends in ErrNonTerminatingGeneration.
//
// Complexity per attempt: O(edges) expected placement + O(n²) component count.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjpower/bfs"
	"github.com/katalvlaran/adjpower/matrix"
)

func generateRejection(n, edges int, rule Rule, cfg builderConfig) (*Result, error) {
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		m, err := matrix.NewSquare(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRejection, err)
		}
		if err = placeEdges(MethodRejection, m, rule, edges, cfg.rng); err != nil {
			return nil, err
		}
		comps, err := bfs.Components(m, bfs.WithMode(cfg.connectivity))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRejection, err)
		}
		cfg.logger.Debug("generation attempt",
			"strategy", Rejection.String(),
			"rule", rule.String(),
			"attempt", attempt,
			"components", comps)
		if comps == 1 {
			return &Result{
				Matrix:     m,
				Rule:       rule,
				Strategy:   Rejection,
				Attempts:   attempt,
				Components: comps,
			}, nil
		}
	}

	cfg.logger.Warn("generation exhausted attempts",
		"rule", rule.String(),
		"size", n,
		"edges", edges,
		"connectivity", cfg.connectivity.String(),
		"max_attempts", cfg.maxAttempts)

	return nil, builderErrorf(MethodRejection, ErrNonTerminatingGeneration,
		"n=%d edges=%d rule=%v after %d attempts", n, edges, rule, cfg.maxAttempts)
}
