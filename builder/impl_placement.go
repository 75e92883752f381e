// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// impl_placement.go — random edge placement under a Rule.
//
// Model:
//   - Each edge is drawn uniformly from the ordered cells (i,j) the rule
//     accepts, exactly like repeated uniform draws with rejection.
//   - Draws are capped at n²·drawsPerCellFactor per edge; after that the
//     accepted cells are enumerated and one is picked uniformly, so
//     placement terminates even when the matrix is nearly full.
//
// Complexity:
//   - Time: O(1) expected per edge on sparse matrices, O(n²) worst case.
//   - Space: O(n²) only when the candidate fallback triggers.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/adjpower/matrix"
)

// cell is an ordered (row, col) position.
type cell struct{ i, j int }

// placeEdges adds count edges to m under rule.
// Returns ErrEdgeCount if the rule runs out of legal cells first; callers
// that validated MaxEdges never see it.
func placeEdges(method string, m *matrix.Dense, rule Rule, count int, rng *rand.Rand) error {
	n := m.Rows()
	maxDraws := n * n * drawsPerCellFactor
	for placed := 0; placed < count; placed++ {
		if drawCell(m, rule, rng, maxDraws) {
			continue
		}
		cands := candidates(m, rule)
		if len(cands) == 0 {
			return builderErrorf(method, ErrEdgeCount,
				"rule=%v ran out of cells after %d of %d edges", rule, placed, count)
		}
		c := cands[rng.Intn(len(cands))]
		rule.place(m, c.i, c.j)
	}

	return nil
}

// drawCell tries up to maxDraws uniform cells and places the first accepted.
func drawCell(m *matrix.Dense, rule Rule, rng *rand.Rand, maxDraws int) bool {
	n := m.Rows()
	for d := 0; d < maxDraws; d++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if rule.Accepts(m, i, j) {
			rule.place(m, i, j)
			return true
		}
	}

	return false
}

// candidates lists every cell rule accepts, row-major.
func candidates(m *matrix.Dense, rule Rule) []cell {
	n := m.Rows()
	out := make([]cell, 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rule.Accepts(m, i, j) {
				out = append(out, cell{i: i, j: j})
			}
		}
	}

	return out
}
