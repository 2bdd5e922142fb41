// Package typo implements the Typo instance of rankgraph.Trait: the
// ranking-rule graph that prefers documents matched through fewer
// spelling corrections.
package typo

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
)

// EdgeData names the word variant chosen for the arc's destination
// term; Cost is that variant's typo distance.
type EdgeData struct {
	Word       string
	FromPrefix bool
}

// Trait is the Typo ranking-rule graph.
type Trait struct{}

var _ rankgraph.Trait[EdgeData] = Trait{}

// BuildEdges proposes one edge per derivation of the destination term,
// costed by its typo distance: cheapest paths correspond to documents
// matched with the fewest corrections overall. The source term
// contributes no cost of its own here — it was already
// costed on the edge that led into it, except for the very first term,
// whose cost is charged on the Start->term arc. An arc ending at End
// gets a single unconditional edge at cost 0; an arc into a term node
// is costed by the destination's derivations whatever its source.
func (Trait) BuildEdges(qg *querygraph.QueryGraph, from, to int) ([]rankgraph.EdgeCandidate[EdgeData], error) {
	toNode := qg.Nodes[to]
	if toNode.Kind != querygraph.KindTerm {
		return []rankgraph.EdgeCandidate[EdgeData]{
			{Cost: 0, Details: rankgraph.Unconditional[EdgeData]()},
		}, nil
	}

	d := toNode.Term.Derivations
	candidates := make([]rankgraph.EdgeCandidate[EdgeData], 0, len(d.All())+1)
	for _, w := range d.All() {
		cost := d.TypoCost(w)
		if cost < 0 {
			continue
		}
		candidates = append(candidates, rankgraph.EdgeCandidate[EdgeData]{
			Cost:    uint8(cost),
			Details: rankgraph.WithData(EdgeData{Word: w}),
		})
	}
	if d.UsePrefixDB {
		candidates = append(candidates, rankgraph.EdgeCandidate[EdgeData]{
			Cost:    0,
			Details: rankgraph.WithData(EdgeData{Word: d.Original, FromPrefix: true}),
		})
	}
	return candidates, nil
}

// ResolveEdge returns the docids matching the chosen word variant,
// consulting the prefix index when the variant was derived that way.
func (Trait) ResolveEdge(db *dbcache.DatabaseCache, details rankgraph.EdgeDetails[EdgeData]) (bitmap.Bitmap, error) {
	d := details.Data
	if d.FromPrefix {
		return db.WordPrefixDocids(d.Word)
	}
	return db.WordDocids(d.Word)
}
