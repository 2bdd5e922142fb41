// Package words implements the Words instance of rankgraph.Trait: the
// ranking-rule graph that simply requires consecutive query terms to
// both be present, with no notion of proximity or typo cost of its own
// (those are other rules' jobs).
package words

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
)

// EdgeData names the two terms' derivation sets whose conjunction this
// edge requires: a document must contain at least one word from As and
// at least one word from Bs.
type EdgeData struct {
	As, Bs []string
}

// Trait is the Words ranking-rule graph: every arc has a single
// candidate edge at cost 0, so this rule never reorders a batch on its
// own — its only effect is to filter a bucket down to documents
// actually containing every term along a path, leaving cost-based
// reordering to rules such as typo and proximity that run beside it in
// the pipeline. The ranking-rule list is ordered, and words is
// typically listed first or last precisely because it carries no cost
// signal.
type Trait struct{}

var _ rankgraph.Trait[EdgeData] = Trait{}

// BuildEdges proposes a single cost-0 edge per arc. Between two term
// nodes it requires both derivations' words to intersect; Start/End
// arcs are unconditional.
func (Trait) BuildEdges(qg *querygraph.QueryGraph, from, to int) ([]rankgraph.EdgeCandidate[EdgeData], error) {
	fromNode, toNode := qg.Nodes[from], qg.Nodes[to]
	if fromNode.Kind != querygraph.KindTerm || toNode.Kind != querygraph.KindTerm {
		return []rankgraph.EdgeCandidate[EdgeData]{
			{Cost: 0, Details: rankgraph.Unconditional[EdgeData]()},
		}, nil
	}

	aWords := fromNode.Term.Derivations.All()
	bWords := toNode.Term.Derivations.All()
	if len(aWords) == 0 || len(bWords) == 0 {
		return nil, nil
	}
	return []rankgraph.EdgeCandidate[EdgeData]{
		{Cost: 0, Details: rankgraph.WithData(EdgeData{As: aWords, Bs: bWords})},
	}, nil
}

// ResolveEdge returns the documents matching some derivation of A and
// some derivation of B.
func (Trait) ResolveEdge(db *dbcache.DatabaseCache, details rankgraph.EdgeDetails[EdgeData]) (bitmap.Bitmap, error) {
	d := details.Data
	a, err := unionWords(db, d.As)
	if err != nil {
		return bitmap.Bitmap{}, err
	}
	b, err := unionWords(db, d.Bs)
	if err != nil {
		return bitmap.Bitmap{}, err
	}
	return a.And(b), nil
}

func unionWords(db *dbcache.DatabaseCache, words []string) (bitmap.Bitmap, error) {
	result := bitmap.New()
	for _, w := range words {
		b, err := db.WordDocids(w)
		if err != nil {
			return bitmap.Bitmap{}, err
		}
		result = result.Or(b)
	}
	return result, nil
}
