package rankgraph

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
)

// EdgeDocidsCache memoizes edge id -> resolved docid bitmap for the
// lifetime of one ranking-rule graph iteration. Its transparency with
// G.Trait.ResolveEdge (same inputs, same result) is covered by tests.
type EdgeDocidsCache[T any] struct {
	universe bitmap.Bitmap
	resolved map[int]bitmap.Bitmap
}

// NewEdgeDocidsCache returns an empty cache scoped to universe, created
// on start_iteration entry and dropped on end_iteration. universe is
// fixed for the cache's whole lifetime — a rule's universe does not
// change between start_iteration and end_iteration — which is what
// lets an Unconditional edge (one that matches any document in the
// universe at that cost) resolve directly to it without a per-call
// parameter on Trait.ResolveEdge.
func NewEdgeDocidsCache[T any](universe bitmap.Bitmap) *EdgeDocidsCache[T] {
	return &EdgeDocidsCache[T]{universe: universe, resolved: make(map[int]bitmap.Bitmap)}
}

// GetOrCompute returns the docid bitmap for edge id e, populating the
// cache on first miss. An Unconditional edge resolves to the cache's
// universe directly; any other edge is populated by invoking
// Trait.ResolveEdge. wasEmpty reports whether the (possibly freshly
// computed) result is empty, so the caller can record e into
// EmptyPathsCache.EmptyEdges.
func (c *EdgeDocidsCache[T]) GetOrCompute(g *Graph[T], db *dbcache.DatabaseCache, e int) (b bitmap.Bitmap, wasEmpty bool, err error) {
	if cached, ok := c.resolved[e]; ok {
		return cached, cached.IsEmpty(), nil
	}
	edge, err := g.checkLiveEdge(e)
	if err != nil {
		return bitmap.Bitmap{}, false, err
	}
	if edge.Details.Unconditional {
		b = c.universe
	} else {
		b, err = g.Trait.ResolveEdge(db, edge.Details)
		if err != nil {
			return bitmap.Bitmap{}, false, err
		}
	}
	c.resolved[e] = b
	return b, b.IsEmpty(), nil
}
