// Package exactness implements the Exactness instance of
// rankgraph.Trait: the ranking-rule graph that prefers documents
// matched by the exact word the user typed over a prefix-database
// expansion of it. Typo'd derivations are out of scope here — the typo
// rule already orders on that axis, and exactness is typically placed
// after it in the ranking-rule list.
package exactness

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
)

// Cost tiers: an exact surface-form match costs nothing; any other
// zero-typo variant costs one; a prefix-database expansion costs two.
const (
	costExact        = 0
	costZeroTypoAlt  = 1
	costPrefixExpand = 2
)

// EdgeData names the chosen word and whether it came from the prefix
// database.
type EdgeData struct {
	Word       string
	FromPrefix bool
}

// Trait is the Exactness ranking-rule graph.
type Trait struct{}

var _ rankgraph.Trait[EdgeData] = Trait{}

// BuildEdges proposes one edge per zero-typo derivation of the
// destination term, costed by how far it is from the exact surface
// form, plus one prefix-expansion edge when the term allows it.
// Arcs ending at End get a single unconditional edge; every arc into a
// term node (from Start, and into phrase nodes too) gets the
// destination term's edges.
func (Trait) BuildEdges(qg *querygraph.QueryGraph, from, to int) ([]rankgraph.EdgeCandidate[EdgeData], error) {
	toNode := qg.Nodes[to]
	if toNode.Kind != querygraph.KindTerm {
		return []rankgraph.EdgeCandidate[EdgeData]{
			{Cost: 0, Details: rankgraph.Unconditional[EdgeData]()},
		}, nil
	}

	d := toNode.Term.Derivations
	candidates := make([]rankgraph.EdgeCandidate[EdgeData], 0, len(d.ZeroTypo)+1)
	for _, w := range d.ZeroTypo {
		cost := uint8(costZeroTypoAlt)
		if w == d.Original {
			cost = costExact
		}
		candidates = append(candidates, rankgraph.EdgeCandidate[EdgeData]{
			Cost:    cost,
			Details: rankgraph.WithData(EdgeData{Word: w}),
		})
	}
	if d.UsePrefixDB {
		candidates = append(candidates, rankgraph.EdgeCandidate[EdgeData]{
			Cost:    costPrefixExpand,
			Details: rankgraph.WithData(EdgeData{Word: d.Original, FromPrefix: true}),
		})
	}
	return candidates, nil
}

// ResolveEdge returns the docids matching the chosen word variant.
func (Trait) ResolveEdge(db *dbcache.DatabaseCache, details rankgraph.EdgeDetails[EdgeData]) (bitmap.Bitmap, error) {
	d := details.Data
	if d.FromPrefix {
		return db.WordPrefixDocids(d.Word)
	}
	return db.WordDocids(d.Word)
}
