// SPDX-License-Identifier: MIT
// Package: adjpower/exercise
//
// board.go — the learner's working copy of a matrix.
//
// Every cell carries an explicit CellState next to its value, so an
// unrevealed cell is never confused with a real weight (0 and negative
// weights are both legal answers).

package exercise

import (
	"fmt"
)

// CellState tags a board cell.
type CellState uint8

const (
	// Hidden cells have no value yet.
	Hidden CellState = iota
	// Entered cells hold a learner's value.
	Entered
	// Revealed cells hold the answer value.
	Revealed
)

// String returns "hidden", "entered" or "revealed".
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Entered:
		return "entered"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Cell is one board position. Value is meaningful only when State != Hidden.
type Cell struct {
	Row, Col int
	State    CellState
	Value    int64
}

// Board is an n×n grid of cells, row-major.
type Board struct {
	n     int
	cells []Cell
}

// newBoard returns an n×n board with every cell Hidden.
func newBoard(n int) *Board {
	b := &Board{n: n, cells: make([]Cell, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b.cells[i*n+j] = Cell{Row: i, Col: j, State: Hidden}
		}
	}

	return b
}

// Size returns n.
func (b *Board) Size() int { return b.n }

// Cell returns the cell at (i,j).
func (b *Board) Cell(i, j int) (Cell, error) {
	if !b.inRange(i, j) {
		return Cell{}, fmt.Errorf("exercise: cell (%d,%d) of %d: %w", i, j, b.n, ErrOutOfRange)
	}

	return b.cells[i*b.n+j], nil
}

// Cells returns a row-major copy of every cell.
func (b *Board) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

// HiddenCount returns the number of cells still Hidden.
func (b *Board) HiddenCount() int {
	count := 0
	for _, c := range b.cells {
		if c.State == Hidden {
			count++
		}
	}

	return count
}

func (b *Board) inRange(i, j int) bool {
	return i >= 0 && i < b.n && j >= 0 && j < b.n
}

func (b *Board) set(i, j int, state CellState, v int64) {
	c := &b.cells[i*b.n+j]
	c.State, c.Value = state, v
}

func (b *Board) clone() *Board {
	return &Board{n: b.n, cells: b.Cells()}
}
