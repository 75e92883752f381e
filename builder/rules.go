// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// rules.go — edge-placement rules and edge-count bounds per generation mode.
//
// Rule table (candidate cell (i,j) drawn uniformly from n×n):
//
//	Default          accept m[i][j]==0                     set m[i][j]
//	Symmetrical      accept m[i][j]==0                     set m[i][j], m[j][i]
//	Antisymmetrical  accept m[i][j]==0 && m[j][i]==0       set m[i][j]
//	Asymmetrical     accept i!=j && m[i][j]==0 && m[j][i]==0  set m[i][j]
//
// Each accepted placement counts as exactly one edge, so a Symmetrical
// matrix with e edges has e nonzero cells in its upper triangle (incl. diagonal).

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjpower/matrix"
)

// Rule selects the structural constraint enforced while placing edges.
type Rule uint8

const (
	// Default places directed edges anywhere, self-loops included.
	Default Rule = iota
	// Symmetrical mirrors every edge (undirected graph).
	Symmetrical
	// Antisymmetrical forbids two opposite edges between distinct vertices.
	Antisymmetrical
	// Asymmetrical is Antisymmetrical without self-loops.
	Asymmetrical
)

// String returns the short mode name used across the module.
func (r Rule) String() string {
	switch r {
	case Default:
		return "DEFAULT"
	case Symmetrical:
		return "SYMM"
	case Antisymmetrical:
		return "ANTISYMM"
	case Asymmetrical:
		return "ASYMM"
	default:
		return fmt.Sprintf("Rule(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the four placement rules.
func (r Rule) Valid() bool { return r <= Asymmetrical }

// MinEdges is the smallest edge count that can connect n vertices (n-1).
func (r Rule) MinEdges(n int) int {
	if n <= 1 {
		return 0
	}

	return n - 1
}

// MaxEdges is the number of distinct placements the rule admits on n vertices:
// n² for Default, n + n(n-1)/2 for Symmetrical and Antisymmetrical (one per
// unordered pair plus the diagonal), n(n-1)/2 for Asymmetrical.
func (r Rule) MaxEdges(n int) int {
	if n <= 0 {
		return 0
	}
	pairs := n * (n - 1) / 2
	switch r {
	case Default:
		return n * n
	case Symmetrical, Antisymmetrical:
		return n + pairs
	case Asymmetrical:
		return pairs
	default:
		return 0
	}
}

// Accepts reports whether the rule allows placing an edge at (i,j) in m.
// Indices must be in range; out-of-range cells are never accepted.
func (r Rule) Accepts(m *matrix.Dense, i, j int) bool {
	x, err := m.At(i, j)
	if err != nil || x != 0 {
		return false
	}
	switch r {
	case Default, Symmetrical:
		return true
	case Antisymmetrical:
		y, _ := m.At(j, i)
		return y == 0
	case Asymmetrical:
		if i == j {
			return false
		}
		y, _ := m.At(j, i)
		return y == 0
	default:
		return false
	}
}

// place writes one edge at (i,j), mirrored for Symmetrical.
// The caller has already checked Accepts.
func (r Rule) place(m *matrix.Dense, i, j int) {
	_ = m.Set(i, j, edgeWeight)
	if r == Symmetrical {
		_ = m.Set(j, i, edgeWeight)
	}
}

// Satisfies reports whether m obeys the rule's structural predicate:
// symmetric for Symmetrical, no mirrored off-diagonal pair for
// Antisymmetrical, additionally no self-loop for Asymmetrical.
// Every square matrix satisfies Default.
func (r Rule) Satisfies(m *matrix.Dense) bool {
	if m == nil || !m.IsSquare() || !r.Valid() {
		return false
	}
	if r == Default {
		return true
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			a, _ := m.At(i, j)
			b, _ := m.At(j, i)
			switch r {
			case Symmetrical:
				if a != b {
					return false
				}
			case Antisymmetrical:
				if i != j && a != 0 && b != 0 {
					return false
				}
			case Asymmetrical:
				if i == j && a != 0 {
					return false
				}
				if i != j && a != 0 && b != 0 {
					return false
				}
			}
		}
	}

	return true
}

// Count reports the number of placements m holds under the rule's
// counting convention: mirrored pairs count once for Symmetrical,
// every nonzero cell counts once otherwise.
func (r Rule) Count(m *matrix.Dense) int {
	if m == nil {
		return 0
	}
	if r != Symmetrical {
		return m.NonZero()
	}
	count := 0
	for i := 0; i < m.Rows(); i++ {
		for j := i; j < m.Cols(); j++ {
			if x, _ := m.At(i, j); x != 0 {
				count++
			}
		}
	}

	return count
}
