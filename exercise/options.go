// SPDX-License-Identifier: MIT
// Package: adjpower/exercise
//
// options.go — session configuration.
//
// Contract:
//   • Option constructors panic on nil pointers and on maxLevel < 1.
//   • Level and mode values are checked by New against the resolved config.

package exercise

import (
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects how the learner interacts with the board.
type Mode uint8

const (
	// Demonstration reveals the answer cell by cell; the learner only watches.
	Demonstration Mode = iota
	// Training reports the correctness of every entered cell immediately.
	Training
	// Check accepts entries silently; correctness is only known via
	// Complete or Mismatches.
	Check
)

// String returns "demonstration", "training" or "check".
func (m Mode) String() string {
	switch m {
	case Demonstration:
		return "demonstration"
	case Training:
		return "training"
	case Check:
		return "check"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode maps a mode name (case-insensitive) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "demonstration", "demo":
		return Demonstration, nil
	case "training":
		return Training, nil
	case "check":
		return Check, nil
	default:
		return 0, fmt.Errorf("exercise: mode %q: %w", name, ErrInvalidMode)
	}
}

// DefaultMaxLevel is the highest power a session reaches by default.
const DefaultMaxLevel = 5

// Option customizes a session.
type Option func(*config)

type config struct {
	level    int
	maxLevel int
	mode     Mode
	logger   *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		level:    1,
		maxLevel: DefaultMaxLevel,
		mode:     Demonstration,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLevel starts the session at power p instead of 1.
func WithLevel(p int) Option {
	return func(c *config) { c.level = p }
}

// WithMaxLevel sets the last power of the session. Panics if n < 1.
func WithMaxLevel(n int) Option {
	if n < 1 {
		panic("exercise: WithMaxLevel(n<1)")
	}
	return func(c *config) { c.maxLevel = n }
}

// WithMode sets the interaction mode. Default Demonstration.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithLogger routes level transitions to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("exercise: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
