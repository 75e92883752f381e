package bfs

// Components counts connected components of adj: repeatedly pick the
// lowest-index unvisited vertex, run BFS from it, drop every reached vertex,
// and count one component per round. An empty adjacency has 0 components.
//
// Under Forward mode a later root may reach vertices an earlier round already
// removed; those are not revisited, so the count is the number of BFS rounds
// needed to cover the graph, not the number of strongly connected components.
func Components(adj Adjacency, opts ...Option) (int, error) {
	_, count, err := Labels(adj, opts...)

	return count, err
}

// Labels assigns every vertex the index (0-based, in discovery order) of the
// BFS round that reached it, and returns the number of rounds.
// Hooks in opts run for every visited vertex across all rounds.
func Labels(adj Adjacency, opts ...Option) ([]int, int, error) {
	n, err := validate(adj)
	if err != nil {
		return nil, 0, err
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, 0, err
	}
	// Component membership ignores any depth limit.
	o.MaxDepth = 0

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	count := 0
	for root := 0; root < n; root++ {
		if labels[root] >= 0 {
			continue
		}
		w := newWalker(adj, n, o)
		// Vertices claimed by earlier rounds count as visited. Everything
		// reachable through them was claimed in the same earlier round, so
		// stopping there yields the same rounds as a fresh visited set.
		for v, l := range labels {
			if l >= 0 {
				w.visited[v] = true
			}
		}
		w.enqueue(root, 0)
		if err = w.loop(); err != nil {
			return nil, 0, err
		}
		for _, v := range w.res.Order {
			labels[v] = count
		}
		count++
	}

	return labels, count, nil
}
