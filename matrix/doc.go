// Package matrix offers integer adjacency matrices and semiring algebra over them.
//
// The matrix package provides:
//
//   - Dense: a row-major int64 matrix with bounds-checked At/Set, deep Clone
//     and value Equal. A zero cell means "no edge".
//   - Three semiring products sharing one i→k→j skeleton:
//     ClassicMul (+,×) counts weighted walks, LogicalMul (OR,AND) composes
//     one-step reachability, TropicalMul (min,+) composes shortest walks with
//     0 read as +Inf.
//   - Power (repeated squaring) and PowerSteps (observable accumulator chain).
//
// Products never mutate their operands and always allocate a fresh result, so
// an accumulator may be multiplied against the original matrix repeatedly
// without aliasing.
//
// The tropical convention is min-plus (shortest path). There is no max-plus
// variant.
//
// See the examples in this package for usage patterns.
package matrix
