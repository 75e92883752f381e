package core_test

import (
	"fmt"

	"github.com/katalvlaran/adjpower/builder"
	"github.com/katalvlaran/adjpower/core"
)

// ExampleGraph_LogicalMultiply shows that the second logical power of a
// directed path keeps only the two-step connection.
func ExampleGraph_LogicalMultiply() {
	g, _ := core.FromRows([][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	fmt.Println(g.GenType(), g.EdgeNumber(), g.ConnectedComponents())

	_ = g.LogicalMultiply(2)
	fmt.Println(g.Matrix())
	fmt.Println(g.GenType(), g.EdgeNumber(), g.ConnectedComponents())
	// Output:
	// ASYMM 2 1
	// [[0 0 1] [0 0 0] [0 0 0]]
	// ASYMM 1 2
}

// ExampleNew generates a connected undirected graph.
func ExampleNew() {
	g, err := core.New(6, 8, core.Symmetrical,
		core.WithBuilder(builder.WithSeed(42)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Size(), g.GenType(), g.EdgeNumber(), g.ConnectedComponents())
	// Output: 6 SYMM 8 1
}
