package rankgraph

import (
	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
)

// Graph owns the source QueryGraph and a dense vector of edges, one
// ranking criterion's worth of cost-annotated arcs derived from it.
type Graph[T any] struct {
	QueryGraph *querygraph.QueryGraph
	Trait      Trait[T]

	// AllEdges is dense and index-addressed; a tombstoned edge is a nil
	// slot — whenever all_edges[e] is non-nil, both endpoints exist and
	// are non-deleted. Never renumbered, mirroring QueryGraph's own
	// tombstone discipline.
	AllEdges []*Edge[T]

	succEdges [][]int // node index -> outgoing edge ids
	predEdges [][]int // node index -> incoming edge ids
}

// SuccessorEdges returns the outgoing edge ids of node i.
func (g *Graph[T]) SuccessorEdges(i int) []int { return g.succEdges[i] }

// PredecessorEdges returns the incoming edge ids of node i.
func (g *Graph[T]) PredecessorEdges(i int) []int { return g.predEdges[i] }

// Edge returns edge id e, or nil if tombstoned.
func (g *Graph[T]) Edge(e int) *Edge[T] { return g.AllEdges[e] }

// NumEdges returns len(AllEdges), including tombstoned slots.
func (g *Graph[T]) NumEdges() int { return len(g.AllEdges) }

// Build derives a Graph[T] from qg by asking trait.BuildEdges for every
// live QueryGraph arc. Rebuilt lazily whenever a ranking rule enters
// start_iteration.
func Build[T any](qg *querygraph.QueryGraph, trait Trait[T]) (*Graph[T], error) {
	n := qg.NumNodes()
	g := &Graph[T]{
		QueryGraph: qg,
		Trait:      trait,
		succEdges:  make([][]int, n),
		predEdges:  make([][]int, n),
	}

	for from := 0; from < n; from++ {
		if qg.Nodes[from].IsDeleted() {
			continue
		}
		for _, to := range qg.Successors(from) {
			if qg.Nodes[to].IsDeleted() {
				continue
			}
			candidates, err := trait.BuildEdges(qg, from, to)
			if err != nil {
				return nil, err
			}
			for _, c := range candidates {
				id := len(g.AllEdges)
				e := &Edge[T]{ID: id, From: from, To: to, Cost: c.Cost, Details: c.Details}
				g.AllEdges = append(g.AllEdges, e)
				g.succEdges[from] = append(g.succEdges[from], id)
				g.predEdges[to] = append(g.predEdges[to], id)
			}
		}
	}
	return g, nil
}

// checkLiveEdge enforces the Graph invariant that a non-tombstoned edge
// always names two non-deleted endpoints. It is called from the hot
// paths that dereference AllEdges[e] (cache population, path
// resolution) so a corrupted graph fails loudly instead of silently
// producing wrong ranking results.
func (g *Graph[T]) checkLiveEdge(e int) (*Edge[T], error) {
	if e < 0 || e >= len(g.AllEdges) {
		return nil, apperror.Internalf("rankgraph: edge id %d out of range", e)
	}
	edge := g.AllEdges[e]
	if edge == nil {
		return nil, apperror.Internalf("rankgraph: edge id %d is tombstoned", e)
	}
	if g.QueryGraph.Nodes[edge.From].IsDeleted() || g.QueryGraph.Nodes[edge.To].IsDeleted() {
		return nil, apperror.Internalf("rankgraph: edge %d references a deleted node", e)
	}
	return edge, nil
}
