// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for adjpower/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep every generated graph seeded.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjpower/builder"
	"github.com/katalvlaran/adjpower/core"
)

// allModes lists the four generation modes.
var allModes = []core.GenType{
	core.Default, core.Symmetrical, core.Antisymmetrical, core.Asymmetrical,
}

// MustGraph builds a Graph from rows or fails the test.
func MustGraph(t *testing.T, rows [][]int64) *core.Graph {
	t.Helper()
	g, err := core.FromRows(rows)
	require.NoError(t, err)

	return g
}

// MustGenerate builds a seeded random Graph or fails the test.
func MustGenerate(t *testing.T, size, edges int, mode core.GenType, seed int64, extra ...builder.BuilderOption) *core.Graph {
	t.Helper()
	opts := append([]builder.BuilderOption{builder.WithSeed(seed)}, extra...)
	g, err := core.New(size, edges, mode, core.WithBuilder(opts...))
	require.NoError(t, err)

	return g
}

// admits reports whether a freshly generated graph of mode with at least two
// vertices may classify as class. Classification clears the antisymmetric
// flag on every all-zero off-diagonal pair, so sparse ANTISYMM/ASYMM output
// is usually ASYMM (or DEFAULT once a self-loop is present).
func admits(mode, class core.GenType) bool {
	switch mode {
	case core.Symmetrical:
		return class == core.Symmetrical
	case core.Asymmetrical:
		return class == core.Asymmetrical || class == core.Antisymmetrical
	case core.Antisymmetrical:
		return class != core.Symmetrical && class != core.Unknown
	default:
		return class != core.Unknown
	}
}
