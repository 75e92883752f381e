package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/adjpower/matrix"
)

// MustDense BUILDS a Dense from a row-wise literal or fails the test.
func MustDense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// RequireRows COMPARES m against an expected row-wise literal, cell by cell,
// reporting the first differing coordinate.
func RequireRows(t *testing.T, m *matrix.Dense, want [][]int64) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows = %d; want %d\n%s", m.Rows(), len(want), m)
	}
	for i := range want {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols = %d; want %d\n%s", m.Cols(), len(want[i]), m)
		}
		for j := range want[i] {
			got, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if got != want[i][j] {
				t.Fatalf("[%d][%d] = %d; want %d\n%s", i, j, got, want[i][j], m)
			}
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}
