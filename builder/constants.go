// SPDX-License-Identifier: MIT
// Package: adjpower/builder
//
// constants.go — method tags and named defaults shared by the generators.

package builder

// Method tags prefix every error returned by this package.
const (
	// MethodGenerate is the tag of the Generate entry point.
	MethodGenerate = "Generate"
	// MethodRejection is the tag of the rejection-sampling strategy.
	MethodRejection = "Rejection"
	// MethodSpanningFirst is the tag of the spanning-first strategy.
	MethodSpanningFirst = "SpanningFirst"
)

// DefaultMaxAttempts bounds the rejection loop. The source behaviour retries
// forever; a bound turns an impossible request into ErrNonTerminatingGeneration.
const DefaultMaxAttempts = 10000

// edgeWeight is the value written into every generated cell.
const edgeWeight = int64(1)

// rootVertex anchors the spanning arborescence; Forward connectivity picks
// the lowest-index vertex as its first root, so rooting here keeps the
// result a single component under both traversal modes.
const rootVertex = 0

// drawsPerCellFactor scales the number of random draws attempted for one
// edge before falling back to an explicit candidate list (n² * factor).
const drawsPerCellFactor = 2
