// Package rankgraph implements the ranking-rule graph: a cost-annotated
// DAG derived from a QueryGraph, one instance per ranking criterion
// (proximity, typo, ...), plus the two caches and the path-resolution
// routine that sit directly on top of it.
//
// Node storage is borrowed by reference from the source QueryGraph (no
// back-pointers): a Graph[T] only ever stores querygraph node indices.
// Edges live in a dense, index-addressed slice, the same layout used
// for adjacency elsewhere in this module; a tombstoned edge is a nil
// slot, never renumbered.
package rankgraph

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
)

// EdgeDetails is the payload of one Edge: either Unconditional (matches
// any document in the universe at Cost) or a rule-specific condition
// Data (e.g. a (word1, word2, proximity) triple for the proximity rule).
type EdgeDetails[T any] struct {
	Unconditional bool
	Data          T
}

// Unconditional builds an EdgeDetails with no condition data.
func Unconditional[T any]() EdgeDetails[T] {
	return EdgeDetails[T]{Unconditional: true}
}

// WithData builds an EdgeDetails carrying condition data.
func WithData[T any](data T) EdgeDetails[T] {
	return EdgeDetails[T]{Data: data}
}

// EdgeCandidate is an edge BuildEdges proposes before it is assigned an
// ID and wired into a Graph's adjacency.
type EdgeCandidate[T any] struct {
	Cost    uint8
	Details EdgeDetails[T]
}

// Edge is a materialized, cost-annotated arc of a ranking-rule graph.
// ID is this edge's position in Graph.AllEdges.
type Edge[T any] struct {
	ID      int
	From    int
	To      int
	Cost    uint8
	Details EdgeDetails[T]
}

// Trait holds the operations specific to one ranking criterion,
// parametrized by its condition-data type T.
type Trait[T any] interface {
	// BuildEdges returns every edge between two adjacent QueryGraph
	// nodes for this criterion. An empty, non-error result means "no
	// edge": the two nodes are disconnected on this arc in this
	// ranking-rule graph (even though they are connected in the query
	// graph).
	BuildEdges(qg *querygraph.QueryGraph, from, to int) ([]EdgeCandidate[T], error)

	// ResolveEdge materializes the docid bitmap for one edge's details.
	// Implementations reach the index only through db.
	ResolveEdge(db *dbcache.DatabaseCache, details EdgeDetails[T]) (bitmap.Bitmap, error)
}
