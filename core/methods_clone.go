// File: methods_clone.go
// Role: Deep copies of Graph instances.

package core

import (
	"fmt"

	"github.com/katalvlaran/adjpower/builder"
)

// Clone returns a deep copy: matrix, type, stats and configuration.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	c := &Graph{}
	c.copyFrom(g)

	return c
}

// CopyFrom overwrites g with a deep copy of src.
func (g *Graph) CopyFrom(src *Graph) error {
	if src == nil {
		return fmt.Errorf("core: CopyFrom: %w", ErrNilGraph)
	}
	if src != g {
		g.copyFrom(src)
	}

	return nil
}

func (g *Graph) copyFrom(src *Graph) {
	g.size = src.size
	g.m = src.m.Clone()
	g.genType = src.genType
	g.edgeNumber = src.edgeNumber
	g.sumWeights = src.sumWeights
	g.components = src.components
	g.connectivity = src.connectivity
	g.bopts = append([]builder.BuilderOption(nil), src.bopts...)
	g.attempts = src.attempts
}
