// Package core defines the Graph entity: a square adjacency matrix together
// with its generation mode and derived statistics.
//
// This file declares GenType, Graph, GraphOption, Stats, sentinel errors and
// the New and FromRows constructors.
//
// Errors:
//
//	ErrInvalidGenerationMode - New was asked for a mode other than the four generation modes.
//	ErrInvalidSize           - negative vertex count.
//	ErrInvalidPower          - power exponent below 1 (alias of matrix.ErrInvalidPower).
//	ErrOutOfRange            - vertex index outside [0, Size()) (alias of matrix.ErrOutOfRange).
//	ErrNilGraph              - nil *Graph passed where a source graph is required.
package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/adjpower/bfs"
	"github.com/katalvlaran/adjpower/builder"
	"github.com/katalvlaran/adjpower/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidGenerationMode indicates a mode New cannot generate.
	ErrInvalidGenerationMode = errors.New("core: invalid generation mode")

	// ErrInvalidSize indicates a negative vertex count.
	ErrInvalidSize = errors.New("core: invalid size")

	// ErrNilGraph indicates a nil source graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidPower indicates a power exponent below 1.
	ErrInvalidPower = matrix.ErrInvalidPower

	// ErrOutOfRange indicates a vertex index outside the matrix.
	ErrOutOfRange = matrix.ErrOutOfRange
)

// GenType is the structural type of a graph's matrix.
type GenType uint8

const (
	// Default is an unrestricted directed graph.
	Default GenType = iota
	// Symmetrical is an undirected graph: m[i][j] == m[j][i].
	Symmetrical
	// Antisymmetrical never has both directions between distinct vertices.
	Antisymmetrical
	// Asymmetrical is Antisymmetrical without self-loops.
	Asymmetrical
	// Unknown is not a generation mode; it marks an unclassifiable input.
	Unknown
)

// String returns the short mode name: DEFAULT, SYMM, ANTISYMM, ASYMM or UNKNOWN.
func (t GenType) String() string {
	switch t {
	case Default:
		return "DEFAULT"
	case Symmetrical:
		return "SYMM"
	case Antisymmetrical:
		return "ANTISYMM"
	case Asymmetrical:
		return "ASYMM"
	default:
		return "UNKNOWN"
	}
}

// ParseGenType accepts the short names and the long ones
// (SYMMETRICAL, ANTISYMMETRICAL, ASYMMETRICAL), case-insensitively.
func ParseGenType(name string) (GenType, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEFAULT":
		return Default, nil
	case "SYMM", "SYMMETRICAL":
		return Symmetrical, nil
	case "ANTISYMM", "ANTISYMMETRICAL":
		return Antisymmetrical, nil
	case "ASYMM", "ASYMMETRICAL":
		return Asymmetrical, nil
	default:
		return Unknown, fmt.Errorf("core: mode %q: %w", name, ErrInvalidGenerationMode)
	}
}

// rule maps a generation mode onto its builder placement rule.
func (t GenType) rule() (builder.Rule, bool) {
	switch t {
	case Default:
		return builder.Default, true
	case Symmetrical:
		return builder.Symmetrical, true
	case Antisymmetrical:
		return builder.Antisymmetrical, true
	case Asymmetrical:
		return builder.Asymmetrical, true
	default:
		return 0, false
	}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithBuilder forwards generation options (seed, strategy, attempts, logger)
// to builder.Generate. Ignored by FromRows.
func WithBuilder(opts ...builder.BuilderOption) GraphOption {
	return func(g *Graph) { g.bopts = append(g.bopts, opts...) }
}

// WithConnectivity sets the traversal mode used both to accept generated
// matrices and to count ConnectedComponents. Default bfs.Weak.
// Panics on an unknown mode.
func WithConnectivity(m bfs.Mode) GraphOption {
	if m != bfs.Weak && m != bfs.Forward {
		panic("core: WithConnectivity(unknown mode)")
	}
	return func(g *Graph) { g.connectivity = m }
}

// Graph is an adjacency-matrix graph.
//
// Cell (i,j) holds the weight of edge i→j; 0 means no edge, any other value
// (negative included) is an edge. Derived statistics are refreshed on
// construction, on every power operation and on Refresh, but not by
// ChangeEdge. A Graph is not safe for concurrent mutation.
type Graph struct {
	size    int
	m       *matrix.Dense
	genType GenType

	// Derived statistics.
	edgeNumber int
	sumWeights int64
	components int

	// Configuration
	connectivity bfs.Mode
	bopts        []builder.BuilderOption

	// generation attempts reported by the builder (0 for FromRows)
	attempts int
}

// Stats is a value snapshot of a Graph's derived statistics.
type Stats struct {
	Size       int
	GenType    GenType
	EdgeNumber int
	SumWeights int64
	Components int
	Attempts   int
}

// newGraph applies options over the defaults.
func newGraph(opts []GraphOption) *Graph {
	g := &Graph{genType: Default, connectivity: bfs.Weak}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// New generates a random connected graph with size vertices and edgeNumber
// edges placed under mode.
//
// size == 0 yields the empty graph (no matrix cells, 0 components, DEFAULT).
// Without builder.WithSeed/WithRand in WithBuilder the graph is seeded from
// the clock and is not reproducible.
//
// Errors: ErrInvalidSize, ErrInvalidGenerationMode, builder.ErrEdgeCount,
// builder.ErrNonTerminatingGeneration, builder.ErrOptionViolation.
// Complexity: O(attempts · size²).
func New(size, edgeNumber int, mode GenType, opts ...GraphOption) (*Graph, error) {
	if size < 0 {
		return nil, fmt.Errorf("core: New size=%d: %w", size, ErrInvalidSize)
	}
	if edgeNumber < 0 {
		return nil, fmt.Errorf("core: New edges=%d: %w", edgeNumber, builder.ErrEdgeCount)
	}
	rule, ok := mode.rule()
	if !ok {
		return nil, fmt.Errorf("core: New mode=%v: %w", mode, ErrInvalidGenerationMode)
	}

	g := newGraph(opts)
	g.genType = mode
	if size == 0 {
		g.m, _ = matrix.NewSquare(0)
		return g, nil
	}

	bopts := make([]builder.BuilderOption, 0, len(g.bopts)+2)
	bopts = append(bopts, builder.WithSeed(time.Now().UnixNano()))
	bopts = append(bopts, g.bopts...)
	bopts = append(bopts, builder.WithConnectivity(g.connectivity))

	res, err := builder.Generate(size, edgeNumber, rule, bopts...)
	if err != nil {
		return nil, fmt.Errorf("core: New(%d, %d, %v): %w", size, edgeNumber, mode, err)
	}

	g.size = size
	g.m = res.Matrix
	g.attempts = res.Attempts
	g.refreshStats()

	return g, nil
}

// FromRows builds a Graph from an explicit square matrix. The type comes
// from Classify; stats are computed immediately.
// Errors: matrix.ErrBadShape for ragged rows, matrix.ErrNonSquare.
func FromRows(rows [][]int64, opts ...GraphOption) (*Graph, error) {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("core: FromRows: %w", err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("core: FromRows: %w", err)
	}

	g := newGraph(opts)
	g.size = m.Rows()
	g.m = m
	g.Refresh()

	return g, nil
}
