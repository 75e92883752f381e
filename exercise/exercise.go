// SPDX-License-Identifier: MIT
// Package: adjpower/exercise
//
// exercise.go — a learner session over successive powers of one graph.
//
// Flow per level p (1 ≤ p ≤ maxLevel):
//  1. answer = base raised to p under the session semiring (core.Powered);
//  2. board  = n×n cells, all Hidden;
//  3. the learner fills the board (Enter) or watches it fill (Reveal/RevealNext);
//  4. once Complete, Advance records the level in History and moves to p+1.

package exercise

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/adjpower/core"
	"github.com/katalvlaran/adjpower/matrix"
)

// Level is a solved level kept in History.
type Level struct {
	Power    int
	Semiring matrix.Semiring
	Answer   [][]int64
}

// Exercise is one learner session. Not safe for concurrent use.
type Exercise struct {
	id       uuid.UUID
	base     *core.Graph
	semiring matrix.Semiring
	mode     Mode
	maxLevel int
	logger   *slog.Logger

	level   int
	answer  *core.Graph
	board   *Board
	cursor  int // next row-major cell for RevealNext
	history []Level
}

// New starts a session on a private copy of base.
// Errors: ErrNilGraph, matrix.ErrUnknownSemiring, ErrInvalidMode, ErrInvalidLevel.
func New(base *core.Graph, s matrix.Semiring, opts ...Option) (*Exercise, error) {
	if base == nil {
		return nil, ErrNilGraph
	}
	if !s.Valid() {
		return nil, fmt.Errorf("exercise: semiring %v: %w", s, matrix.ErrUnknownSemiring)
	}
	cfg := newConfig(opts)
	if cfg.mode > Check {
		return nil, fmt.Errorf("exercise: %v: %w", cfg.mode, ErrInvalidMode)
	}
	if cfg.level < 1 || cfg.level > cfg.maxLevel {
		return nil, fmt.Errorf("exercise: level %d not in [1,%d]: %w", cfg.level, cfg.maxLevel, ErrInvalidLevel)
	}

	e := &Exercise{
		id:       uuid.New(),
		base:     base.Clone(),
		semiring: s,
		mode:     cfg.mode,
		maxLevel: cfg.maxLevel,
		logger:   cfg.logger,
	}
	if err := e.start(cfg.level); err != nil {
		return nil, err
	}

	return e, nil
}

// start computes the answer for level p and hides the whole board.
func (e *Exercise) start(p int) error {
	answer, err := e.base.Powered(e.semiring, p)
	if err != nil {
		return fmt.Errorf("exercise: level %d: %w", p, err)
	}
	e.level = p
	e.answer = answer
	e.board = newBoard(answer.Size())
	e.cursor = 0
	e.logger.Info("exercise level started",
		"id", e.id.String(),
		"mode", e.mode.String(),
		"semiring", e.semiring.String(),
		"level", p,
		"max_level", e.maxLevel)

	return nil
}

// ID returns the session identifier.
func (e *Exercise) ID() uuid.UUID { return e.id }

// Mode returns the interaction mode.
func (e *Exercise) Mode() Mode { return e.mode }

// Semiring returns the product used for every level.
func (e *Exercise) Semiring() matrix.Semiring { return e.semiring }

// Level returns the current power.
func (e *Exercise) Level() int { return e.level }

// MaxLevel returns the last power of the session.
func (e *Exercise) MaxLevel() int { return e.maxLevel }

// Base returns a copy of the graph being powered.
func (e *Exercise) Base() *core.Graph { return e.base.Clone() }

// Answer returns a copy of the current level's answer graph.
func (e *Exercise) Answer() *core.Graph { return e.answer.Clone() }

// Board returns a copy of the current working board.
func (e *Exercise) Board() *Board { return e.board.clone() }

// Enter records the learner's value v at (i,j).
// In Training mode ok reports whether v matches the answer; in Check mode
// ok is always false. Demonstration boards reject entries with ErrReadOnly.
func (e *Exercise) Enter(i, j int, v int64) (ok bool, err error) {
	if e.mode == Demonstration {
		return false, ErrReadOnly
	}
	want, err := e.answerAt(i, j)
	if err != nil {
		return false, err
	}
	e.board.set(i, j, Entered, v)
	e.logger.Debug("exercise cell entered",
		"id", e.id.String(), "level", e.level, "row", i, "col", j, "correct", v == want)

	return e.mode == Training && v == want, nil
}

// Reveal fills (i,j) with the answer value.
func (e *Exercise) Reveal(i, j int) error {
	want, err := e.answerAt(i, j)
	if err != nil {
		return err
	}
	e.board.set(i, j, Revealed, want)

	return nil
}

// RevealNext reveals the next not-yet-revealed cell in row-major order and
// returns its position; ok is false once every cell is revealed.
func (e *Exercise) RevealNext() (i, j int, ok bool) {
	n := e.board.Size()
	for ; e.cursor < n*n; e.cursor++ {
		i, j = e.cursor/n, e.cursor%n
		if c, _ := e.board.Cell(i, j); c.State == Revealed {
			continue
		}
		_ = e.Reveal(i, j)
		e.cursor++

		return i, j, true
	}

	return 0, 0, false
}

// Mismatches returns every filled cell whose value differs from the answer,
// row-major. Hidden cells are not mismatches.
func (e *Exercise) Mismatches() []Cell {
	var out []Cell
	for _, c := range e.board.cells {
		if c.State == Hidden {
			continue
		}
		if want, _ := e.answer.At(c.Row, c.Col); c.Value != want {
			out = append(out, c)
		}
	}

	return out
}

// Complete reports whether every cell is filled and equal to the answer.
func (e *Exercise) Complete() bool {
	return e.board.HiddenCount() == 0 && len(e.Mismatches()) == 0
}

// Advance stores the solved level in History and starts the next one.
// Errors: ErrNotComplete, ErrLastLevel.
func (e *Exercise) Advance() error {
	if !e.Complete() {
		return fmt.Errorf("exercise: level %d: %d hidden, %d wrong: %w",
			e.level, e.board.HiddenCount(), len(e.Mismatches()), ErrNotComplete)
	}
	if e.level >= e.maxLevel {
		return fmt.Errorf("exercise: level %d of %d: %w", e.level, e.maxLevel, ErrLastLevel)
	}
	e.history = append(e.history, Level{
		Power:    e.level,
		Semiring: e.semiring,
		Answer:   e.answer.Matrix(),
	})
	e.logger.Info("exercise level solved", "id", e.id.String(), "level", e.level)

	return e.start(e.level + 1)
}

// History returns solved levels, oldest first.
func (e *Exercise) History() []Level {
	out := make([]Level, len(e.history))
	copy(out, e.history)

	return out
}

func (e *Exercise) answerAt(i, j int) (int64, error) {
	if !e.board.inRange(i, j) {
		return 0, fmt.Errorf("exercise: cell (%d,%d) of %d: %w", i, j, e.board.Size(), ErrOutOfRange)
	}

	return e.answer.At(i, j)
}
