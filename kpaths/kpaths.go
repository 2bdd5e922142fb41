// Package kpaths implements the K-cheapest-paths engine: it
// enumerates, in ascending order of total cost, the batches of
// Start->End paths through a ranking-rule graph, pruning edges and
// prefixes already known to resolve to the empty bitmap.
//
// The engine is a state object whose ComputePathsOfNextLowestCost
// method returns its own successor rather than suspending a goroutine:
// all frontier bookkeeping lives in State, favoring explicit,
// restartable traversal state over cooperative scheduling.
package kpaths

import (
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
)

// infinite stands in for an unreachable node's distance-to-End; every
// live node in a well-formed graph is reachable to End, so this should
// never surface in a correctly constructed graph.
const infinite = int(^uint(0) >> 1)

// State holds a per-node lower bound on remaining cost to End
// (distanceToEnd, computed once by reverse relaxation over the
// graph's topological order) plus the next integer cost to enumerate.
type State[T any] struct {
	distanceToEnd []int
	nextCost      int
	exhausted     bool
}

// NewState computes distanceToEnd by reverse relaxation: processing
// nodes in reverse topological order (End first), each node's distance
// is the minimum, over its live successor edges, of that edge's cost
// plus its target's distance.
func NewState[T any](g *rankgraph.Graph[T]) (*State[T], error) {
	qg := g.QueryGraph
	order, err := qg.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	n := qg.NumNodes()
	distanceToEnd := make([]int, n)
	for i := range distanceToEnd {
		distanceToEnd[i] = infinite
	}
	endIdx := qg.EndIndex()
	distanceToEnd[endIdx] = 0

	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		if u == endIdx {
			continue
		}
		for _, eid := range g.SuccessorEdges(u) {
			e := g.Edge(eid)
			if e == nil || distanceToEnd[e.To] == infinite {
				continue
			}
			if cand := int(e.Cost) + distanceToEnd[e.To]; cand < distanceToEnd[u] {
				distanceToEnd[u] = cand
			}
		}
	}

	if distanceToEnd[querygraph.StartIndex] == infinite {
		return &State[T]{exhausted: true}, nil
	}
	return &State[T]{distanceToEnd: distanceToEnd, nextCost: distanceToEnd[querygraph.StartIndex]}, nil
}

// IsExhausted reports whether no further cost classes remain.
func (s *State[T]) IsExhausted() bool { return s.exhausted }

// NextCost returns the total cost the next call to
// ComputePathsOfNextLowestCost will enumerate.
func (s *State[T]) NextCost() int { return s.nextCost }

// ComputePathsOfNextLowestCost performs a cost-bounded, A*-pruned DFS
// from Start for every path whose total cost equals s.NextCost(),
// inserting each into out. It returns the state for the next
// achievable cost class and true if more work may remain, or
// (nil, false) once no higher-cost paths can possibly exist — the
// caller loops while out stays empty, since an empty batch at some
// cost is a valid outcome, not an error.
func (s *State[T]) ComputePathsOfNextLowestCost(g *rankgraph.Graph[T], emptyCache *rankgraph.EmptyPathsCache, out *rankgraph.PathsMap[int]) (*State[T], bool) {
	if s.exhausted {
		return nil, false
	}
	cost := s.nextCost
	endIdx := g.QueryGraph.EndIndex()

	nextFrontier := infinite
	path := make([]int, 0, 8)

	var walk func(u, acc int)
	walk = func(u, acc int) {
		if u == endIdx {
			if acc == cost {
				out.Insert(append([]int(nil), path...), cost)
			}
			return
		}
		if emptyCache.IsPrefixKnownEmpty(path) {
			return
		}
		for _, eid := range g.SuccessorEdges(u) {
			if emptyCache.IsEdgeEmpty(eid) {
				continue
			}
			e := g.Edge(eid)
			newAcc := acc + int(e.Cost)
			lowerBound := newAcc + s.distanceToEnd[e.To]
			if lowerBound > cost {
				if lowerBound < nextFrontier {
					nextFrontier = lowerBound
				}
				continue
			}
			path = append(path, eid)
			walk(e.To, newAcc)
			path = path[:len(path)-1]
		}
	}
	walk(querygraph.StartIndex, 0)

	if nextFrontier == infinite {
		return nil, false
	}
	return &State[T]{distanceToEnd: s.distanceToEnd, nextCost: nextFrontier}, true
}
