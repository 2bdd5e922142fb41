// Package ranking defines the RankingRule capability set and the
// pull-based Pipeline that composes an ordered list of rules into a
// single descending-relevance stream of document ids.
package ranking

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
)

// Query is the refined query state a rule may pass downstream alongside
// its bucket. The core's query shape is the QueryGraph itself; rules
// that narrow term candidates as a side effect of matching (none do
// yet in this module) would return a tombstoned copy here.
type Query struct {
	Graph *querygraph.QueryGraph
}

// Output is a bucket plus the query to hand to the next rule.
type Output struct {
	Query      Query
	Candidates bitmap.Bitmap
}

// Rule is the capability set every ranking rule exposes, independent
// of its internal graph shape.
type Rule interface {
	// ID names the rule (a ranking_rules config entry).
	ID() string

	// StartIteration prepares the rule to iterate buckets within
	// universe subject to query. Called once per pipeline depth entry.
	StartIteration(universe bitmap.Bitmap, query Query) error

	// NextBucket returns the next bucket (a sub-bitmap of universe,
	// disjoint from every bucket this rule already returned within the
	// current iteration) plus a possibly-refined query, or (nil, nil)
	// once exhausted. Preconditions: universe.Len() > 1 — callers must
	// short-circuit singletons directly into results rather than
	// calling NextBucket.
	NextBucket() (*Output, error)

	// EndIteration releases the caches allocated by StartIteration.
	EndIteration()
}
