package matrix_test

import (
	"testing"

	"github.com/katalvlaran/adjpower/matrix"
	"github.com/stretchr/testify/require"
)

// path3 is the directed path 0→1→2.
var path3 = [][]int64{
	{0, 1, 0},
	{0, 0, 1},
	{0, 0, 0},
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]int64{{1, 2, 3}})
	b := MustDense(t, [][]int64{{1, 2}})

	for _, s := range []matrix.Semiring{matrix.Classic, matrix.Logical, matrix.Tropical} {
		_, err := matrix.Mul(s, a, b)
		AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

		_, err = matrix.Mul(s, nil, b)
		AssertErrorIs(t, err, matrix.ErrNilMatrix)
	}

	_, err := matrix.Mul(matrix.Semiring(42), a, a)
	AssertErrorIs(t, err, matrix.ErrUnknownSemiring)
}

func TestClassicMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := MustDense(t, [][]int64{{7, 8}, {9, 10}, {11, 12}})

	got, err := matrix.ClassicMul(a, b)
	require.NoError(t, err)
	RequireRows(t, got, [][]int64{{58, 64}, {139, 154}})
}

func TestClassicMul_TwoCycle(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]int64{{0, 1}, {1, 0}})
	got, err := matrix.ClassicMul(m, m)
	require.NoError(t, err)
	RequireRows(t, got, [][]int64{{1, 0}, {0, 1}})
}

func TestLogicalMul_Path(t *testing.T) {
	t.Parallel()

	m := MustDense(t, path3)
	got, err := matrix.LogicalMul(m, m)
	require.NoError(t, err)
	RequireRows(t, got, [][]int64{
		{0, 0, 1},
		{0, 0, 0},
		{0, 0, 0},
	})
}

func TestLogicalMul_WeightsCollapseToOne(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]int64{{5, -3}, {0, 2}})
	got, err := matrix.LogicalMul(m, m)
	require.NoError(t, err)
	RequireRows(t, got, [][]int64{{1, 1}, {0, 1}})
}

func TestTropicalMul_ShortestOfTwoRoutes(t *testing.T) {
	t.Parallel()

	// 0→1 (2), 1→3 (3) total 5; 0→2 (1), 2→3 (1) total 2.
	m := MustDense(t, [][]int64{
		{0, 2, 1, 0},
		{0, 0, 0, 3},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	got, err := matrix.TropicalMul(m, m)
	require.NoError(t, err)
	RequireRows(t, got, [][]int64{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
}

func TestTropicalMul_AbsentStaysZero(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]int64{{0, 2, 0}, {0, 0, 3}, {0, 0, 0}})
	got, err := matrix.TropicalMul(m, m)
	require.NoError(t, err)
	RequireRows(t, got, [][]int64{{0, 0, 5}, {0, 0, 0}, {0, 0, 0}})
}

func TestMul_OperandsUntouched(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]int64{{1, 1}, {0, 1}})
	before := a.Clone()
	for _, s := range []matrix.Semiring{matrix.Classic, matrix.Logical, matrix.Tropical} {
		out, err := matrix.Mul(s, a, a)
		require.NoError(t, err)
		require.True(t, a.Equal(before), "%v mutated its operand", s)
		require.NoError(t, out.Set(0, 0, 99))
		require.True(t, a.Equal(before), "%v result aliases its operand", s)
	}
}

func TestParseSemiring(t *testing.T) {
	t.Parallel()

	cases := map[string]matrix.Semiring{
		"classic":   matrix.Classic,
		" Logical ": matrix.Logical,
		"TROPICAL":  matrix.Tropical,
	}
	for in, want := range cases {
		got, err := matrix.ParseSemiring(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
		require.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := matrix.ParseSemiring("max-plus")
	AssertErrorIs(t, err, matrix.ErrUnknownSemiring)
	require.False(t, matrix.Semiring(3).Valid())
	require.Equal(t, "Semiring(3)", matrix.Semiring(3).String())
}

func mustParse(t *testing.T, name string) matrix.Semiring {
	t.Helper()
	s, err := matrix.ParseSemiring(name)
	require.NoError(t, err)

	return s
}
