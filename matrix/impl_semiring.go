// SPDX-License-Identifier: MIT
// Package matrix - semiring matrix products.
//
// Purpose:
//   - Three products over the same i→k→j combinatorial skeleton:
//     ClassicMul (+,×), LogicalMul (OR,AND), TropicalMul (min,+).
//   - Operands are never mutated; every call allocates a fresh result.
//
// Contract:
//   - a, b non-nil; a.Cols() == b.Rows(); else ErrNilMatrix / ErrDimensionMismatch.
//   - Zero means "absent" on input for Logical and Tropical; Tropical maps an
//     all-absent min back to 0 on output.
//
// Determinism:
//   - Fixed loop orders; no maps; identical inputs give identical outputs.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opClassicMul  = "ClassicMul"
	opLogicalMul  = "LogicalMul"
	opTropicalMul = "TropicalMul"
	opMul         = "Mul"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul dispatches to the product selected by s.
// Returns ErrUnknownSemiring for an unsupported s.
func Mul(s Semiring, a, b *Dense) (*Dense, error) {
	switch s {
	case Classic:
		return ClassicMul(a, b)
	case Logical:
		return LogicalMul(a, b)
	case Tropical:
		return TropicalMul(a, b)
	default:
		return nil, matrixErrorf(opMul, fmt.Errorf("%v: %w", s, ErrUnknownSemiring))
	}
}

// ClassicMul returns a·b with result[i][j] = Σ_k a[i][k]·b[k][j].
// Loop order i→k→j over the flat buffers; zero a[i][k] rows are skipped.
// Integer overflow is not checked; teaching-scale inputs stay far below it.
// Complexity: O(r·n·c).
func ClassicMul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opClassicMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]int64, aRows*bCols)}

	var (
		i, j, k                            int
		av                                 int64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // contributes nothing
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// LogicalMul returns the boolean product: result[i][j] = 1 iff there is a k
// with a[i][k] != 0 and b[k][j] != 0, else 0. The k-scan stops at the first
// witness.
// Complexity: O(r·n·c) worst case.
func LogicalMul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opLogicalMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]int64, aRows*bCols)}

	var i, j, k, rowOffsetA int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			for k = 0; k < aCols; k++ {
				if a.data[rowOffsetA+k] != 0 && b.data[k*bCols+j] != 0 {
					res.data[i*bCols+j] = 1
					break
				}
			}
		}
	}

	return res, nil
}

// TropicalMul returns the min-plus product:
//
//	result[i][j] = min_k ( a[i][k] + b[k][j] )
//
// where a stored 0 stands for +Inf (no edge) and any sum touching +Inf is
// +Inf. When every candidate is +Inf the result cell is 0 (no walk).
// A finite minimum that happens to equal 0 (negative weights) is therefore
// indistinguishable from "no walk" in the output.
// Complexity: O(r·n·c).
func TropicalMul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opTropicalMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]int64, aRows*bCols)}

	var (
		i, j, k, rowOffsetA int
		av, bv, cand, best  int64
		finite              bool // false while best is still +Inf
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			finite = false
			best = 0
			for k = 0; k < aCols; k++ {
				av = a.data[rowOffsetA+k]
				if av == 0 {
					continue // +Inf ⊗ x = +Inf
				}
				bv = b.data[k*bCols+j]
				if bv == 0 {
					continue
				}
				cand = av + bv
				if !finite || cand < best { // strict improvement only
					best = cand
					finite = true
				}
			}
			if finite {
				res.data[i*bCols+j] = best
			}
		}
	}

	return res, nil
}
