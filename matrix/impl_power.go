// SPDX-License-Identifier: MIT
// Package matrix - semiring matrix powers.
//
// Purpose:
//   - Power: M^k under a semiring, by repeated squaring (O(log k) products).
//   - PowerSteps: the plain accumulator chain acc ← acc ⊗ M, reporting every
//     intermediate power 1..k to a callback.
//
// Contract:
//   - M square (ErrNonSquare), k >= 1 (ErrInvalidPower), known semiring.
//   - k == 1 returns an independent copy of M, untouched by the semiring
//     (a Logical first power keeps the original weights).
//   - M is never mutated.

package matrix

import "fmt"

const (
	opPower      = "Power"
	opPowerSteps = "PowerSteps"
)

// validatePower runs the shared argument checks for Power and PowerSteps.
func validatePower(s Semiring, m *Dense, k int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("%v: %w", s, ErrUnknownSemiring)
	}
	if k < 1 {
		return fmt.Errorf("k=%d: %w", k, ErrInvalidPower)
	}

	return nil
}

// Power returns M^k under semiring s.
//
// Implementation:
//   - Stage 1: validate; k == 1 → Clone.
//   - Stage 2: binary exponentiation without an identity element: the first
//     set bit seeds the result with the current square.
//
// Tropical products collapse a finite zero-sum walk into "absent", which breaks
// associativity once negative weights appear. For a Tropical M with any
// negative cell the plain chain (same order as PowerSteps) is used instead, so
// results always match the left-to-right definition.
//
// Complexity: O(n³·log k) squaring; O(n³·k) for the fallback chain.
func Power(s Semiring, m *Dense, k int) (*Dense, error) {
	if err := validatePower(s, m, k); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k == 1 {
		return m.Clone(), nil
	}
	if s == Tropical && m.HasNegative() {
		return chain(s, m, k, nil)
	}

	var (
		result *Dense // nil until the first set bit
		base   = m
		err    error
	)
	for e := k; e > 0; e >>= 1 {
		if e&1 == 1 {
			if result == nil {
				result = base.Clone()
			} else if result, err = Mul(s, result, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		if e > 1 {
			if base, err = Mul(s, base, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	return result, nil
}

// PowerSteps computes M^k by the accumulator chain acc ← acc ⊗ M and calls fn
// with every intermediate power p = 1..k (acc is a private copy; fn may keep
// it). A non-nil error from fn aborts the chain and is returned as is.
// A nil fn is allowed.
//
// Complexity: O(n³·k).
func PowerSteps(s Semiring, m *Dense, k int, fn func(p int, acc *Dense) error) (*Dense, error) {
	if err := validatePower(s, m, k); err != nil {
		return nil, matrixErrorf(opPowerSteps, err)
	}

	return chain(s, m, k, fn)
}

// chain is the shared left-to-right accumulator loop; arguments are validated.
func chain(s Semiring, m *Dense, k int, fn func(p int, acc *Dense) error) (*Dense, error) {
	acc := m.Clone()
	if fn != nil {
		if err := fn(1, acc.Clone()); err != nil {
			return nil, err
		}
	}

	var err error
	for p := 2; p <= k; p++ {
		if acc, err = Mul(s, acc, m); err != nil {
			return nil, matrixErrorf(opPowerSteps, err)
		}
		if fn != nil {
			if err = fn(p, acc.Clone()); err != nil {
				return nil, err
			}
		}
	}

	return acc, nil
}
