// Package proximity implements the Proximity instance of
// rankgraph.Trait: the ranking-rule graph whose cheapest paths prefer
// documents where consecutive query words sit close together.
package proximity

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
)

// EdgeData is the condition carried by a non-unconditional proximity
// edge: documents must contain w1 and w2 separated by exactly Prox
// word positions.
type EdgeData struct {
	W1, W2 string
	Prox   bitmap.Proximity
}

// Trait is the Proximity ranking-rule graph.
type Trait struct{}

var _ rankgraph.Trait[EdgeData] = Trait{}

// BuildEdges scores proximity only between two single-word term nodes
// at adjacent query positions (phrase fusions are handled by the
// caller's query graph wiring but carry no proximity edges of their
// own: a phrase's internal word distances are fixed, not a ranking
// criterion). Any arc touching Start, End, or a phrase node gets a
// single unconditional edge at cost 0 so the graph stays connected —
// proximity has nothing to say about it. For every (prox, a, b)
// combination between two single-word terms it proposes one
// conditional edge, plus a single unconditional fallback at cost
// MaxDistance that keeps A and B connected even when no tighter
// proximity matches.
func (Trait) BuildEdges(qg *querygraph.QueryGraph, from, to int) ([]rankgraph.EdgeCandidate[EdgeData], error) {
	fromNode, toNode := qg.Nodes[from], qg.Nodes[to]
	if fromNode.Kind != querygraph.KindTerm || toNode.Kind != querygraph.KindTerm ||
		fromNode.Term.Position.Len() != 1 || toNode.Term.Position.Len() != 1 {
		return []rankgraph.EdgeCandidate[EdgeData]{
			{Cost: 0, Details: rankgraph.Unconditional[EdgeData]()},
		}, nil
	}

	aWords := fromNode.Term.Derivations.All()
	bWords := toNode.Term.Derivations.All()

	candidates := make([]rankgraph.EdgeCandidate[EdgeData], 0, len(aWords)*len(bWords)*int(bitmap.MaxDistance)+1)
	for prox := bitmap.Proximity(1); prox < bitmap.MaxDistance; prox++ {
		for _, a := range aWords {
			for _, b := range bWords {
				candidates = append(candidates, rankgraph.EdgeCandidate[EdgeData]{
					Cost:    prox,
					Details: rankgraph.WithData(EdgeData{W1: a, W2: b, Prox: prox}),
				})
			}
		}
	}
	candidates = append(candidates, rankgraph.EdgeCandidate[EdgeData]{
		Cost:    bitmap.MaxDistance,
		Details: rankgraph.Unconditional[EdgeData](),
	})
	return candidates, nil
}

// ResolveEdge materializes a conditional edge's docids via the
// database cache's word-pair-proximity lookup. Unconditional edges
// never reach here: EdgeDocidsCache resolves them directly against the
// universe.
func (Trait) ResolveEdge(db *dbcache.DatabaseCache, details rankgraph.EdgeDetails[EdgeData]) (bitmap.Bitmap, error) {
	d := details.Data
	return db.WordPairProximityDocids(d.W1, d.W2, d.Prox)
}
