package ranking

import (
	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/applog"
	"github.com/vuthanhtung2412/rankgraph/bitmap"
)

// Pipeline is a pull-based composition of an ordered rule list into
// one descending-relevance stream of document ids: the first rule's
// buckets are each handed, in turn, to the second rule as its universe,
// and so on, so the very first id produced is the single
// highest-ranked document in the whole result.
type Pipeline struct {
	Rules  []Rule
	Logger *applog.Logger
}

// NewPipeline builds a Pipeline over rules in ranking-criterion order,
// logging through logger (applog.Nop() if nil).
func NewPipeline(rules []Rule, logger *applog.Logger) *Pipeline {
	if logger == nil {
		logger = applog.Nop()
	}
	return &Pipeline{Rules: rules, Logger: logger}
}

// Run produces up to limit document ids, most relevant first, for query
// within universe. Callers wanting a "next" cursor for pagination pass
// limit+1 and drop the trailing id.
//
// This uses the Go call stack itself as the pipeline's depth stack:
// fill recurses one frame per pipeline depth, which is the natural
// shape for a pull-based next_bucket — each frame pulls from its own
// rule and recurses into the next rule only for the bucket it just
// pulled, never materializing sibling buckets it hasn't been asked for
// yet.
func (p *Pipeline) Run(universe bitmap.Bitmap, query Query, limit int) ([]bitmap.DocumentID, error) {
	if limit < 0 {
		return nil, apperror.InvalidQueryf("limit", "ranking: negative limit %d", limit)
	}
	var results []bitmap.DocumentID
	if err := p.fill(0, universe, query, limit, &results); err != nil {
		p.Logger.SearchAborted("pipeline", err)
		return nil, err
	}
	p.Logger.FinalResult(len(results), len(results) >= limit)
	return results, nil
}

// fill appends document ids from universe to results, consulting deeper
// rules only as far as needed to reach limit.
func (p *Pipeline) fill(depth int, universe bitmap.Bitmap, query Query, limit int, results *[]bitmap.DocumentID) error {
	if len(*results) >= limit {
		return nil
	}

	// A singleton (or empty) universe needs no further ranking: there
	// is nothing left to order.
	if universe.Len() <= 1 {
		appendUpTo(results, universe.ToSlice(), limit)
		return nil
	}

	// No more rules to refine with: the remaining universe is the
	// bucket, emitted in whatever order the bitmap iterates.
	if depth >= len(p.Rules) {
		appendUpTo(results, universe.ToSlice(), limit)
		return nil
	}

	rule := p.Rules[depth]
	if err := rule.StartIteration(universe, query); err != nil {
		return err
	}
	defer rule.EndIteration()

	for len(*results) < limit {
		out, err := rule.NextBucket()
		if err != nil {
			return err
		}
		if out == nil {
			return nil
		}
		if err := p.fill(depth+1, out.Candidates, out.Query, limit, results); err != nil {
			return err
		}
	}
	return nil
}

// appendUpTo appends ids to *results until it reaches limit entries.
func appendUpTo(results *[]bitmap.DocumentID, ids []bitmap.DocumentID, limit int) {
	for _, id := range ids {
		if len(*results) >= limit {
			return
		}
		*results = append(*results, id)
	}
}
