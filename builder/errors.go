// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w and the method tag
//     ("Generate: n=4 edges=2: builder: edge count out of range").
//   • Generation never panics; validation panics are confined to option
//     constructors (WithRand(nil), WithLogger(nil), WithMaxAttempts(<1)).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a negative vertex count.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrEdgeCount indicates that the requested edge number is outside
// [Rule.MinEdges(n), Rule.MaxEdges(n)]. Such requests can never produce a
// connected matrix (too few) or can never finish placement (too many).
var ErrEdgeCount = errors.New("builder: edge count out of range")

// ErrUnknownRule indicates a Rule value outside the four placement rules.
var ErrUnknownRule = errors.New("builder: unknown placement rule")

// ErrNeedRandSource indicates that no *rand.Rand was resolved
// (neither WithSeed nor WithRand was supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNonTerminatingGeneration indicates that the rejection loop used every
// permitted attempt without producing a single connected component.
// Usage: if errors.Is(err, ErrNonTerminatingGeneration) { /* reseed or switch strategy */ }.
var ErrNonTerminatingGeneration = errors.New("builder: generation did not converge")

// ErrOptionViolation indicates an option value that must surface as an error
// rather than a panic (e.g. an unknown Strategy or connectivity mode).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes a sentinel with the method tag and a formatted
// parameter description: "<method>: <msg>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
