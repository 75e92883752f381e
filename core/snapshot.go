// File: snapshot.go
// Role: Serializable view of a Graph.
// AI-HINT (file):
//   - Graph implements yaml.Marshaler through MarshalYAML; yaml.Marshal(g)
//     emits the Snapshot below.

package core

// Snapshot is a plain, serializable copy of a Graph.
type Snapshot struct {
	Size       int       `yaml:"size"`
	GenType    string    `yaml:"gen_type"`
	EdgeNumber int       `yaml:"edge_number"`
	SumWeights int64     `yaml:"sum_weights"`
	Components int       `yaml:"connected_components"`
	Matrix     [][]int64 `yaml:"matrix,flow"`
}

// Snapshot copies g into a Snapshot.
func (g *Graph) Snapshot() Snapshot {
	return Snapshot{
		Size:       g.size,
		GenType:    g.genType.String(),
		EdgeNumber: g.edgeNumber,
		SumWeights: g.sumWeights,
		Components: g.components,
		Matrix:     g.m.ToRows(),
	}
}

// MarshalYAML renders the graph as its Snapshot.
func (g *Graph) MarshalYAML() (interface{}, error) {
	return g.Snapshot(), nil
}
