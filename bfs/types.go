// Package bfs provides tunable options and error definitions
// for breadth-first search over an adjacency matrix.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a vertex.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrNilAdjacency is returned if a nil adjacency is passed.
	ErrNilAdjacency = errors.New("bfs: adjacency is nil")

	// ErrNonSquare is returned when the adjacency has Rows() != Cols().
	ErrNonSquare = errors.New("bfs: adjacency is not square")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Adjacency is the read-only view BFS needs: a square grid whose nonzero
// cell (i,j) is an edge i→j. *matrix.Dense satisfies it.
type Adjacency interface {
	Rows() int
	Cols() int
	At(i, j int) (int64, error)
}

// Mode selects which edges a traversal may follow.
type Mode uint8

const (
	// Weak follows every edge in both directions, so components are the weakly
	// connected components of the directed graph. Default.
	Weak Mode = iota

	// Forward follows edges only in their stored direction. Components then
	// cluster vertices by forward reachability from the lowest-index vertex
	// still unvisited; on directed input the count depends on vertex order.
	Forward
)

// String returns "weak" or "forward".
func (m Mode) String() string {
	switch m {
	case Weak:
		return "weak"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// traversal is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Mode picks forward-only or weak (undirected) traversal.
	Mode Mode

	// OnVisit is called when visiting a vertex with its depth from the start.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Weak mode
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Mode:     Weak,
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithMode sets the traversal mode. Unknown modes are an option violation.
func WithMode(m Mode) Option {
	return func(o *BFSOptions) {
		if m != Weak && m != Forward {
			o.err = fmt.Errorf("%w: unknown mode %v", ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// resolve applies opts over the defaults and returns any recorded violation.
func resolve(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: Depth[v] is the edge distance from the start, or -1 if unreached.
type BFSResult struct {
	Order []int
	Depth []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
