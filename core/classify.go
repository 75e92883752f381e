// File: classify.go
// Role: Structural type classification of an adjacency matrix.
// Determinism:
//   - Single pass over the lower triangle incl. diagonal, row by row.
//   - Tie-break order: SYMM > ANTISYMM > ASYMM > DEFAULT.

package core

import "github.com/katalvlaran/adjpower/matrix"

// Classify returns the structural type of m.
//
// Three flags start true and are cleared while scanning cells (i,j), j ≤ i:
//   - a nonzero diagonal cell clears asymmetric;
//   - an off-diagonal pair with m[i][j] == m[j][i] clears antisymmetric
//     (this includes a pair where both cells are 0);
//   - any pair with m[i][j] != m[j][i] clears symmetric.
//
// The scan stops as soon as all three are false. A nil or non-square matrix
// is Unknown; the empty matrix is Symmetrical.
//
// Complexity: O(n²) worst case.
func Classify(m *matrix.Dense) GenType {
	if matrix.ValidateSquare(m) != nil {
		return Unknown
	}

	symmetric, antisymmetric, asymmetric := true, true, true
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			a, _ := m.At(i, j)
			b, _ := m.At(j, i)
			if i == j && a != 0 {
				asymmetric = false
			}
			if i != j && a == b {
				antisymmetric = false
			}
			if a != b {
				symmetric = false
			}
			if !symmetric && !antisymmetric && !asymmetric {
				return Default
			}
		}
	}

	switch {
	case symmetric:
		return Symmetrical
	case antisymmetric:
		return Antisymmetrical
	case asymmetric:
		return Asymmetrical
	default:
		return Default
	}
}
