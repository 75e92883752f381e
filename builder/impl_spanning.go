// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// impl_spanning.go — spanning-first generation.
//
// Vertices other than rootVertex join in a random order; each one receives an
// edge parent→v from a uniformly chosen, already attached parent. The result
// is an arborescence rooted at rootVertex (n-1 placements), legal under every
// rule because v has no edges yet. The remaining edges-(n-1) placements use
// the ordinary rule. Every vertex is forward-reachable from rootVertex, so the
// matrix is one component under both bfs.Weak and bfs.Forward.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjpower/bfs"
	"github.com/katalvlaran/adjpower/matrix"
)

func generateSpanning(n, edges int, rule Rule, cfg builderConfig) (*Result, error) {
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSpanningFirst, err)
	}

	attached := make([]int, 1, n)
	attached[0] = rootVertex
	for _, v := range cfg.rng.Perm(n) {
		if v == rootVertex {
			continue
		}
		parent := attached[cfg.rng.Intn(len(attached))]
		rule.place(m, parent, v)
		attached = append(attached, v)
	}

	if err = placeEdges(MethodSpanningFirst, m, rule, edges-(n-1), cfg.rng); err != nil {
		return nil, err
	}

	comps, err := bfs.Components(m, bfs.WithMode(cfg.connectivity))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSpanningFirst, err)
	}
	cfg.logger.Debug("generation attempt",
		"strategy", SpanningFirst.String(),
		"rule", rule.String(),
		"attempt", 1,
		"components", comps)
	if comps != 1 {
		return nil, builderErrorf(MethodSpanningFirst, ErrNonTerminatingGeneration,
			"n=%d edges=%d rule=%v left %d components", n, edges, rule, comps)
	}

	return &Result{
		Matrix:     m,
		Rule:       rule,
		Strategy:   SpanningFirst,
		Attempts:   1,
		Components: comps,
	}, nil
}
