// Package builder generates random adjacency matrices that satisfy a
// structural placement rule and form a single connected component.
//
// The package offers the following key components:
//
//   - Generate(n, edges, rule, opts...): the entry point; returns a Result
//     with the matrix, the strategy used and the number of attempts.
//   - Placement rules (Rule):
//     – Default:          any empty cell, self-loops allowed.
//     – Symmetrical:      mirrored pairs, one edge per pair.
//     – Antisymmetrical:  never both directions between distinct vertices.
//     – Asymmetrical:     Antisymmetrical without self-loops.
//   - Edge bounds: Rule.MinEdges(n) = n-1 and Rule.MaxEdges(n) (n², n+n(n-1)/2,
//     n+n(n-1)/2, n(n-1)/2). Requests outside them fail with ErrEdgeCount.
//   - Strategies (Strategy):
//     – Rejection:        regenerate the whole matrix until connected,
//     bounded by WithMaxAttempts (default DefaultMaxAttempts).
//     – SpanningFirst:    random arborescence from vertex 0, then the rest;
//     connected by construction.
//   - Options (BuilderOption): WithSeed, WithRand, WithMaxAttempts,
//     WithStrategy, WithConnectivity, WithLogger.
//
// Guarantees:
//
//   - Determinism: the same seed and options always yield the same matrix.
//   - Fast-fail on nil or meaningless option parameters via panics in
//     option constructors; Generate itself never panics.
//   - Every error wraps a sentinel from errors.go with a method tag.
//   - Attempts are logged at Debug, exhaustion at Warn (log/slog).
package builder
