// Package attribute implements the Attribute instance of
// rankgraph.Trait: the ranking-rule graph that prefers documents
// matching a term in a more important attribute (field), per a
// caller-supplied attribute priority order, backed by an inverted
// (word, attribute id) lookup alongside the word/prefix/proximity
// ones the other rules use.
package attribute

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
)

// EdgeData names the chosen word and the attribute it is required to
// occur in.
type EdgeData struct {
	Word string
	Attr bitmap.AttributeID
}

// Trait is the Attribute ranking-rule graph. Order lists attribute ids
// from most to least important; its position in the slice becomes the
// edge cost, so the cheapest paths match in the most important
// attribute.
type Trait struct {
	Order []bitmap.AttributeID
}

var _ rankgraph.Trait[EdgeData] = Trait{}

// BuildEdges proposes, for the destination term, one edge per
// (word, attribute) combination drawn from t.Order, costed by the
// attribute's rank. Arcs ending at End get a single unconditional edge;
// every arc into a term node (from Start, and into phrase nodes too)
// gets the destination term's edges.
func (t Trait) BuildEdges(qg *querygraph.QueryGraph, from, to int) ([]rankgraph.EdgeCandidate[EdgeData], error) {
	toNode := qg.Nodes[to]
	if toNode.Kind != querygraph.KindTerm {
		return []rankgraph.EdgeCandidate[EdgeData]{
			{Cost: 0, Details: rankgraph.Unconditional[EdgeData]()},
		}, nil
	}

	words := toNode.Term.Derivations.All()
	candidates := make([]rankgraph.EdgeCandidate[EdgeData], 0, len(words)*len(t.Order))
	for rank, attr := range t.Order {
		for _, w := range words {
			candidates = append(candidates, rankgraph.EdgeCandidate[EdgeData]{
				Cost:    uint8(rank),
				Details: rankgraph.WithData(EdgeData{Word: w, Attr: attr}),
			})
		}
	}
	return candidates, nil
}

// ResolveEdge returns the documents matching Word within Attr.
func (Trait) ResolveEdge(db *dbcache.DatabaseCache, details rankgraph.EdgeDetails[EdgeData]) (bitmap.Bitmap, error) {
	d := details.Data
	return db.WordAttributeDocids(d.Word, d.Attr)
}
