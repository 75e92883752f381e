// Package bfs provides breadth-first search over an adjacency matrix,
// returning visit order and unweighted depths, plus connected-component
// counting built on top of it.
//
// BFS explores vertices in increasing distance from a start vertex with a
// FIFO queue; each vertex is visited at most once. Every call starts from an
// empty visited set.
package bfs

import (
	"fmt"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     Adjacency
	n       int
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// validate checks adj is non-nil and square and returns its order.
func validate(adj Adjacency) (int, error) {
	if adj == nil {
		return 0, ErrNilAdjacency
	}
	if adj.Rows() != adj.Cols() {
		return 0, fmt.Errorf("bfs: %dx%d: %w", adj.Rows(), adj.Cols(), ErrNonSquare)
	}

	return adj.Rows(), nil
}

// BFS runs breadth-first search on adj starting from start,
// applying any number of functional Options.
// Returns ErrNilAdjacency, ErrNonSquare or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(adj Adjacency, start int, opts ...Option) (*BFSResult, error) {
	n, err := validate(adj)
	if err != nil {
		return nil, err
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: start %d of %d: %w", start, n, ErrStartOutOfRange)
	}

	w := newWalker(adj, n, o)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// newWalker prepares a walker with an all-unreached result.
func newWalker(adj Adjacency, n int, o BFSOptions) *walker {
	depth := make([]int, n)
	for i := range depth {
		depth[i] = -1
	}

	return &walker{
		adj:     adj,
		n:       n,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order: make([]int, 0, n),
			Depth: depth,
		},
	}
}

// enqueue marks v visited at depth d and appends it to the queue.
func (w *walker) enqueue(v, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor in
// ascending index order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for u := 0; u < w.n; u++ {
		if w.visited[u] {
			continue
		}
		ok, err := linked(w.adj, item.v, u, w.opts.Mode)
		if err != nil {
			return err
		}
		if ok {
			w.enqueue(u, nextDepth)
		}
	}

	return nil
}

// linked reports whether the traversal may step v→u under mode.
func linked(adj Adjacency, v, u int, mode Mode) (bool, error) {
	x, err := adj.At(v, u)
	if err != nil {
		return false, err
	}
	if x != 0 {
		return true, nil
	}
	if mode == Forward {
		return false, nil
	}
	y, err := adj.At(u, v)
	if err != nil {
		return false, err
	}

	return y != 0, nil
}

// Neighbors returns every j with adj[v][j] != 0, ascending. This is the
// out-neighborhood only, regardless of any traversal mode.
func Neighbors(adj Adjacency, v int) ([]int, error) {
	n, err := validate(adj)
	if err != nil {
		return nil, err
	}
	if v < 0 || v >= n {
		return nil, fmt.Errorf("bfs: vertex %d of %d: %w", v, n, ErrStartOutOfRange)
	}
	out := make([]int, 0, n)
	for j := 0; j < n; j++ {
		x, err := adj.At(v, j)
		if err != nil {
			return nil, err
		}
		if x != 0 {
			out = append(out, j)
		}
	}

	return out, nil
}
