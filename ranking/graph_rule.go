package ranking

import (
	"github.com/vuthanhtung2412/rankgraph/applog"
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/kpaths"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
)

// GraphBasedRule is the implementation every ranking-rule-graph-backed
// rule (proximity, typo, words, attribute, exactness) shares,
// parametrized only by the trait that builds and resolves its edges.
// Each rule owns one of these.
type GraphBasedRule[T any] struct {
	name   string
	trait  rankgraph.Trait[T]
	db     *dbcache.DatabaseCache
	logger *applog.Logger

	graph      *rankgraph.Graph[T]
	state      *kpaths.State[T]
	edgeCache  *rankgraph.EdgeDocidsCache[T]
	emptyCache *rankgraph.EmptyPathsCache

	// remaining is the universe this rule's iteration started with,
	// shrunk by .AndNot() after every bucket it has already yielded —
	// this is what keeps a single rule's successive buckets disjoint,
	// since ResolvePaths itself only ever intersects down into a fixed
	// universe rather than tracking what it has already given out.
	remaining bitmap.Bitmap
}

// NewGraphBasedRule builds a rule named name from trait, resolving
// edges against db and logging through logger (applog.Nop() if the
// caller doesn't care).
func NewGraphBasedRule[T any](name string, trait rankgraph.Trait[T], db *dbcache.DatabaseCache, logger *applog.Logger) *GraphBasedRule[T] {
	if logger == nil {
		logger = applog.Nop()
	}
	return &GraphBasedRule[T]{name: name, trait: trait, db: db, logger: logger}
}

// ID returns the rule's name.
func (r *GraphBasedRule[T]) ID() string { return r.name }

// StartIteration rebuilds the ranking-rule graph from query's
// QueryGraph, seeds the K-cheapest-paths state and the two caches scoped
// to universe, and resets the shrinking remaining universe. The graph
// is rebuilt lazily here rather than kept live between iterations,
// since the query it's built from may have changed.
func (r *GraphBasedRule[T]) StartIteration(universe bitmap.Bitmap, query Query) error {
	g, err := rankgraph.Build(query.Graph, r.trait)
	if err != nil {
		return err
	}
	state, err := kpaths.NewState(g)
	if err != nil {
		return err
	}

	r.graph = g
	r.state = state
	r.edgeCache = rankgraph.NewEdgeDocidsCache[T](universe)
	r.emptyCache = rankgraph.NewEmptyPathsCache()
	r.remaining = universe

	r.logger.RankingRuleGraphBuilt(r.name, g.NumEdges())
	return nil
}

// NextBucket advances the K-cheapest-paths engine, cost class by cost
// class, until one resolves to a non-empty sub-bitmap of the still-
// remaining universe, or the engine is exhausted. Every returned
// bucket is removed from remaining before returning, so no document
// crosses from one bucket into a later one within this iteration.
func (r *GraphBasedRule[T]) NextBucket() (*Output, error) {
	for r.state != nil {
		out := rankgraph.NewPathsMap[int]()
		cost := r.state.NextCost()
		next, more := r.state.ComputePathsOfNextLowestCost(r.graph, r.emptyCache, out)

		if !out.IsEmpty() {
			bucket, err := r.graph.ResolvePaths(r.db, r.edgeCache, r.emptyCache, r.remaining, out)
			if err != nil {
				r.logger.SearchAborted(r.name, err)
				return nil, err
			}
			r.logger.PathsOfCost(r.name, cost, out.Len())
			if !bucket.IsEmpty() {
				r.remaining = r.remaining.AndNot(bucket)
				r.logger.Bucket(r.name, cost, bucket.Len(), r.remaining.Len())
				r.state = next
				return &Output{Query: Query{Graph: r.graph.QueryGraph}, Candidates: bucket}, nil
			}
		}

		if !more {
			r.state = nil
			r.logger.RuleExhausted(r.name)
			return nil, nil
		}
		r.state = next
	}
	return nil, nil
}

// EndIteration drops this iteration's graph and caches, returning the
// rule to the state it was in before StartIteration.
func (r *GraphBasedRule[T]) EndIteration() {
	r.graph = nil
	r.state = nil
	r.edgeCache = nil
	r.emptyCache = nil
	r.remaining = bitmap.Bitmap{}
}

var _ Rule = (*GraphBasedRule[struct{}])(nil)
