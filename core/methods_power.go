// File: methods_power.go
// Role: In-place and side-effect-free matrix powers.
// AI-HINT (file):
//   - On error the Graph is untouched (matrix, type and stats).
//   - After success GenType is reclassified and stats are refreshed.

package core

import (
	"fmt"

	"github.com/katalvlaran/adjpower/matrix"
)

// Multiply replaces the matrix with its k-th power under s.
// Errors: ErrInvalidPower for k < 1, matrix.ErrUnknownSemiring.
func (g *Graph) Multiply(s matrix.Semiring, k int) error {
	p, err := matrix.Power(s, g.m, k)
	if err != nil {
		return fmt.Errorf("core: Multiply(%v, %d): %w", s, k, err)
	}
	g.m = p
	g.Refresh()

	return nil
}

// ClassicMultiply raises the matrix to the k-th power with (+,×).
// Entry (i,j) of a 0/1 matrix becomes the number of walks of length k.
func (g *Graph) ClassicMultiply(k int) error { return g.Multiply(matrix.Classic, k) }

// LogicalMultiply raises the matrix to the k-th power with (∨,∧).
// For k ≥ 2 entry (i,j) is 1 iff a walk of length exactly k exists;
// k == 1 leaves the matrix (and its weights) as is.
func (g *Graph) LogicalMultiply(k int) error { return g.Multiply(matrix.Logical, k) }

// TropicalMultiply raises the matrix to the k-th power with (min,+).
// Entry (i,j) becomes the minimum weight of a walk of length exactly k,
// 0 if none exists.
func (g *Graph) TropicalMultiply(k int) error { return g.Multiply(matrix.Tropical, k) }

// Powered returns a new Graph holding the k-th power of g under s; g is
// unchanged.
func (g *Graph) Powered(s matrix.Semiring, k int) (*Graph, error) {
	c := g.Clone()
	if err := c.Multiply(s, k); err != nil {
		return nil, err
	}

	return c, nil
}
