// Package core provides the Graph entity used by the adjacency-matrix
// exercises: an n×n int64 matrix plus its structural type and statistics.
//
// The Graph supports:
//
//   - Random connected generation under four modes (New):
//     DEFAULT, SYMM, ANTISYMM, ASYMM, delegated to package builder.
//   - Construction from explicit rows (FromRows), typed by Classify.
//   - Powers under three semirings, in place (ClassicMultiply,
//     LogicalMultiply, TropicalMultiply, Multiply) or as a copy (Powered).
//   - Single-cell edits (ChangeEdge) that deliberately leave stats stale
//     until Refresh is called.
//   - Deep copies (Clone, CopyFrom) and a yaml-friendly Snapshot.
//
// Statistics
//
//	EdgeNumber  nonzero cells; mirrored pairs count once while GenType is SYMM.
//	SumWeights  sum of every cell.
//	ConnectedComponents  BFS rounds needed to cover the vertices (package bfs),
//	            weak connectivity by default, forward with WithConnectivity.
//
// Configuration Options (GraphOption):
//
//	– WithBuilder(opts ...builder.BuilderOption)
//	    Seed, strategy, attempt bound and logger for generation.
//	– WithConnectivity(bfs.Mode)
//	    Traversal mode for both generation acceptance and component counts.
//
// Errors:
//
//	ErrInvalidGenerationMode, ErrInvalidSize, ErrInvalidPower, ErrOutOfRange,
//	ErrNilGraph, plus wrapped builder and matrix sentinels.
//
// Concurrency: a Graph owns its matrix exclusively and carries no lock;
// share it across goroutines only for reads.
package core
