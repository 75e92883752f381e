// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the semiring kernels.
package matrix

import (
	"fmt"
	"strings"
)

// Semiring selects the (⊕, ⊗) pair used by Mul and Power.
//
//	Classic  : (+, ×)        over int64, counts/weights walks.
//	Logical  : (OR, AND)     nonzero = true, one-step reachability composition.
//	Tropical : (min, +)      0 = +Inf (absent), shortest walk weight.
type Semiring uint8

const (
	// Classic is ordinary integer matrix multiplication.
	Classic Semiring = iota
	// Logical is boolean multiplication; results are 0/1.
	Logical
	// Tropical is min-plus multiplication with 0 read as +Inf.
	Tropical
)

// Canonical semiring names (used by String/ParseSemiring and the CLI).
const (
	nameClassic  = "classic"
	nameLogical  = "logical"
	nameTropical = "tropical"
)

// String returns the canonical lower-case name.
func (s Semiring) String() string {
	switch s {
	case Classic:
		return nameClassic
	case Logical:
		return nameLogical
	case Tropical:
		return nameTropical
	default:
		return fmt.Sprintf("Semiring(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the supported semirings.
func (s Semiring) Valid() bool { return s <= Tropical }

// ParseSemiring maps a case-insensitive name onto a Semiring.
// Returns ErrUnknownSemiring for anything else.
func ParseSemiring(name string) (Semiring, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameClassic:
		return Classic, nil
	case nameLogical:
		return Logical, nil
	case nameTropical:
		return Tropical, nil
	default:
		return 0, fmt.Errorf("ParseSemiring(%q): %w", name, ErrUnknownSemiring)
	}
}
