// Package adjpower generates random connected graphs as integer adjacency
// matrices and raises them to powers under three semirings.
//
// 🚀 What is adjpower?
//
//	A small, deterministic, seedable toolkit that brings together:
//		• Generation: random connected graphs in DEFAULT, SYMM, ANTISYMM and ASYMM modes
//		• Matrix powers: classic (+,×), logical (OR,AND) and tropical (min,+)
//		• Connectivity: BFS traversal and component counting, weak or forward
//		• Classification: the structural type of any square matrix
//		• Exercises: level-by-level power drills with hidden cells
//
// Packages:
//
//	matrix/   — dense int64 matrices, semiring products and powers
//	bfs/      — breadth-first search, neighbors and components
//	builder/  — random connected generation under a placement rule
//	core/     — the Graph type: stats, classification, powers, clone
//	exercise/ — demonstration, training and check sessions over powers
//	cmd/adjpower — cobra CLI over all of the above
//
// Quick example:
//
//	g, _ := core.New(5, 6, core.Symmetrical, core.WithBuilder(builder.WithSeed(1)))
//	_ = g.LogicalMultiply(2) // g now holds walks of length exactly 2
//	fmt.Println(g.GenType(), g.ConnectedComponents())
//
// The walk-counting square of a 4-cycle
//
//	0───1
//	│   │
//	3───2
//
// links every vertex to itself and to the opposite corner.
//
//	go install github.com/katalvlaran/adjpower/cmd/adjpower@latest
package adjpower
