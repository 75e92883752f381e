// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with a call-site
// tag via %w) and tests check them with errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// attach context with fmt.Errorf("ctx: %w", ErrX); callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> dimension mismatch -> power/semiring domain.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when row-wise input is ragged.
	ErrBadShape = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// i.e. a.Cols() != b.Rows() for any semiring product.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidPower is returned by Power/PowerSteps when k < 1.
	ErrInvalidPower = errors.New("matrix: power must be >= 1")

	// ErrUnknownSemiring is returned when a Semiring value is outside the
	// supported set (Classic, Logical, Tropical).
	ErrUnknownSemiring = errors.New("matrix: unknown semiring")
)
