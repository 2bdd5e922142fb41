// Package querygraph builds and exposes the query DAG: an ordered
// sequence of QueryNodes with forward-only successor/predecessor
// adjacency, built once per search from the caller's term derivations.
//
// Nodes and adjacency live in dense, index-addressed slices rather
// than behind pointers, so a RankingRuleGraph can borrow a QueryGraph
// by reference and store its own edges as plain node-index pairs,
// avoiding back-pointers entirely.
package querygraph

import (
	"sort"

	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/queryterm"
)

// QueryGraph is an acyclic, forward-only DAG of QueryNodes.
// Node 0 is always Start; EndIndex names the (unique) End node.
// Deleted nodes keep their index: tombstones are never renumbered.
type QueryGraph struct {
	Nodes        []Node
	successors   [][]int
	predecessors [][]int
	endIndex     int
}

// StartIndex is always 0.
const StartIndex = 0

// EndIndex returns the index of the unique End node.
func (g *QueryGraph) EndIndex() int { return g.endIndex }

// Successors returns the live (non-Deleted-target) successor indices of
// node i, in ascending order.
func (g *QueryGraph) Successors(i int) []int { return g.successors[i] }

// Predecessors returns the live predecessor indices of node i, in
// ascending order.
func (g *QueryGraph) Predecessors(i int) []int { return g.predecessors[i] }

// NumNodes returns len(Nodes), including tombstoned positions.
func (g *QueryGraph) NumNodes() int { return len(g.Nodes) }

// candidate wraps an input term positioned over the token stream. Build
// works on the sorted LocatedQueryTerm slice directly and does not use
// this type.
type candidate struct {
	term queryterm.LocatedQueryTerm
}

// Build constructs a QueryGraph from a set of positioned term candidates
// (typically: one candidate per single word position, plus one candidate
// per phrase fusion spanning several positions) and numPositions, the
// total number of input token slots.
//
// Construction rules:
//  1. Emit Start at index 0.
//  2. Emit one Term node per candidate; connect predecessor candidate A
//     to successor candidate B whenever A.End == B.Start (consecutive
//     spans, including phrase fusions that occupy a longer span).
//  3. Emit End; any node whose span covers the final input slot
//     (Term.Position.End == numPositions) connects to End. Likewise
//     Start connects to every node starting at position 0.
//  4. Remove (tombstone) any node unreachable from Start or unable to
//     reach End.
func Build(candidates []queryterm.LocatedQueryTerm, numPositions int) (*QueryGraph, error) {
	if numPositions <= 0 {
		return nil, apperror.InvalidQueryf("numPositions", "must be positive, got %d", numPositions)
	}
	for _, c := range candidates {
		if c.Position.Start < 0 || c.Position.End > numPositions || c.Position.Start >= c.Position.End {
			return nil, apperror.InvalidQueryf("term.position", "span [%d,%d) invalid for %d positions", c.Position.Start, c.Position.End, numPositions)
		}
	}

	sorted := append([]queryterm.LocatedQueryTerm(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position.Start != sorted[j].Position.Start {
			return sorted[i].Position.Start < sorted[j].Position.Start
		}
		return sorted[i].Position.End < sorted[j].Position.End
	})

	// Index layout: [Start, term_0, term_1, ..., term_{n-1}, End].
	n := len(sorted)
	g := &QueryGraph{
		Nodes:        make([]Node, n+2),
		successors:   make([][]int, n+2),
		predecessors: make([][]int, n+2),
		endIndex:     n + 1,
	}
	g.Nodes[StartIndex] = Node{Kind: KindStart}
	g.Nodes[g.endIndex] = Node{Kind: KindEnd}
	for i, t := range sorted {
		g.Nodes[i+1] = Node{Kind: KindTerm, Term: t}
	}

	g.wireEdges(numPositions)
	g.pruneUnreachable()

	return g, nil
}

// termSpan returns the span of node i when it is a Term node. Term
// nodes are 1-based within [1, n]; 0 is Start and n+1 is End.
func (g *QueryGraph) termSpan(i int) (start, end int, ok bool) {
	if g.Nodes[i].Kind != KindTerm {
		return 0, 0, false
	}
	s := g.Nodes[i].Term.Position
	return s.Start, s.End, true
}

func (g *QueryGraph) link(from, to int) {
	g.successors[from] = append(g.successors[from], to)
	g.predecessors[to] = append(g.predecessors[to], from)
}

func (g *QueryGraph) wireEdges(numPositions int) {
	n := len(g.Nodes)
	for i := 1; i < n-1; i++ {
		start, _, _ := g.termSpan(i)
		if start == 0 {
			g.link(StartIndex, i)
		}
	}
	for i := 1; i < n-1; i++ {
		_, end, _ := g.termSpan(i)
		for j := 1; j < n-1; j++ {
			if i == j {
				continue
			}
			jStart, _, _ := g.termSpan(j)
			if jStart == end {
				g.link(i, j)
			}
		}
		if end == numPositions {
			g.link(i, g.endIndex)
		}
	}
	// A graph with no candidates (only Start and End): Start connects
	// straight to End (empty query after stop-word removal upstream is
	// not this package's concern, but a degenerate numPositions==0 input
	// is already rejected in Build).
	if n == 2 {
		g.link(StartIndex, g.endIndex)
	}
}

// pruneUnreachable marks Deleted any node not reachable from Start via
// live successors, or unable to reach End via live predecessors.
// Tombstoning never renumbers indices.
func (g *QueryGraph) pruneUnreachable() {
	n := len(g.Nodes)
	fromStart := g.reachableVia(StartIndex, g.successors)
	toEnd := g.reachableVia(g.endIndex, g.predecessors)

	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		keep[i] = fromStart[i] && toEnd[i]
	}
	keep[StartIndex] = true
	keep[g.endIndex] = true

	for i := 0; i < n; i++ {
		if !keep[i] {
			g.Nodes[i] = Node{Kind: KindDeleted}
		}
	}
	g.filterAdjacency(keep)
}

func (g *QueryGraph) reachableVia(start int, adj [][]int) []bool {
	seen := make([]bool, len(adj))
	queue := []int{start}
	seen[start] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return seen
}

func (g *QueryGraph) filterAdjacency(keep []bool) {
	for i := range g.successors {
		g.successors[i] = filterInts(g.successors[i], keep)
		g.predecessors[i] = filterInts(g.predecessors[i], keep)
	}
}

func filterInts(xs []int, keep []bool) []int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:0]
	for _, x := range xs {
		if keep[x] {
			out = append(out, x)
		}
	}
	return out
}
