// Package bfs provides breadth-first search and connected-component counting
// over an adjacency matrix.
//
// What
//
//   - BFS(adj, start, opts...) explores vertices in non-decreasing distance
//     (edge count) from start and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: Depth[v] = distance from start, -1 if unreached
//   - Neighbors(adj, v) lists the out-neighbors of v (adj[v][j] != 0).
//   - Components / Labels cover the vertex set with successive BFS rounds.
//
// Traversal modes
//
//	Weak (default): an edge i→j may be walked in both directions; components
//	are the weakly connected components.
//	Forward: edges are walked only in their stored direction; the component
//	count is the number of BFS rounds (lowest unvisited root first) needed to
//	cover every vertex. On directed graphs this is reachability clustering,
//	not weak or strong connectivity.
//
// Determinism
//
//	Neighbors are scanned in ascending index order and roots are picked in
//	ascending index order, so Order and Labels are fully reproducible.
//
// Complexity (V = matrix order)
//
//   - Time:   O(V²) per traversal (full row scan per visited vertex)
//   - Memory: O(V)
//
// Options
//
//   - WithMode(m):      Weak or Forward.
//   - WithMaxDepth(d):  stop exploring beyond depth d (>0); ignored by Components.
//   - WithOnVisit(fn):  hook during visit; returning an error aborts the search.
//
// Errors
//
//   - ErrNilAdjacency     if adj is nil.
//   - ErrNonSquare        if adj is not square.
//   - ErrStartOutOfRange  if the start vertex is not in [0, V).
//   - ErrOptionViolation  if an Option is invalid (negative depth, unknown mode).
//   - Wrapped OnVisit hook errors.
package bfs
