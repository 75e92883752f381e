// SPDX-License-Identifier: MIT
// Package: adjpower/exercise
//
// errors.go — sentinel errors for exercise sessions.

package exercise

import "errors"

var (
	// ErrNilGraph indicates New received a nil base graph.
	ErrNilGraph = errors.New("exercise: base graph is nil")

	// ErrOutOfRange indicates a cell outside the board.
	ErrOutOfRange = errors.New("exercise: cell out of range")

	// ErrNotComplete indicates Advance was called before every cell matched.
	ErrNotComplete = errors.New("exercise: level not complete")

	// ErrLastLevel indicates Advance was called on the final level.
	ErrLastLevel = errors.New("exercise: already at last level")

	// ErrInvalidLevel indicates a level outside [1, maxLevel].
	ErrInvalidLevel = errors.New("exercise: invalid level")

	// ErrInvalidMode indicates a Mode outside Training, Check and Demonstration.
	ErrInvalidMode = errors.New("exercise: invalid mode")

	// ErrReadOnly indicates Enter was called in Demonstration mode.
	ErrReadOnly = errors.New("exercise: board is read-only in demonstration mode")
)
