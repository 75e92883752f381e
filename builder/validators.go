// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// validators.go — parameter contracts for Generate, checked in priority order:
// size, rule, edge count, options, RNG.

package builder

// validateGenerate rejects requests that can never yield a connected matrix
// or can never finish placing their edges.
// Complexity: O(1).
func validateGenerate(n, edges int, rule Rule, cfg builderConfig) error {
	if n < 0 {
		return builderErrorf(MethodGenerate, ErrTooFewVertices, "n=%d < 0", n)
	}
	if !rule.Valid() {
		return builderErrorf(MethodGenerate, ErrUnknownRule, "rule=%v", rule)
	}
	lo, hi := rule.MinEdges(n), rule.MaxEdges(n)
	if edges < lo || edges > hi {
		return builderErrorf(MethodGenerate, ErrEdgeCount,
			"n=%d rule=%v edges=%d not in [%d,%d]", n, rule, edges, lo, hi)
	}
	if cfg.err != nil {
		return builderErrorf(MethodGenerate, cfg.err, "options")
	}
	if n > 0 && cfg.rng == nil {
		return builderErrorf(MethodGenerate, ErrNeedRandSource, "n=%d", n)
	}

	return nil
}
