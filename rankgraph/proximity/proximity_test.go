package proximity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/queryterm"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
	"github.com/vuthanhtung2412/rankgraph/rankgraph/proximity"
)

type fakeIndex struct {
	pairs map[[3]any]bitmap.Bitmap
}

func (f *fakeIndex) WordDocids(string) (bitmap.Bitmap, error)       { return bitmap.New(), nil }
func (f *fakeIndex) WordPrefixDocids(string) (bitmap.Bitmap, error) { return bitmap.New(), nil }
func (f *fakeIndex) WordPairProximityDocids(w1, w2 string, prox bitmap.Proximity) (bitmap.Bitmap, error) {
	b, ok := f.pairs[[3]any{w1, w2, prox}]
	if !ok {
		return bitmap.New(), nil
	}
	return b, nil
}
func (f *fakeIndex) WordAttributeDocids(string, bitmap.AttributeID) (bitmap.Bitmap, error) {
	return bitmap.New(), nil
}

func buildQuickBrownGraph(t *testing.T) *querygraph.QueryGraph {
	t.Helper()
	quick := queryterm.NewWord(0, queryterm.Derivations{Original: "quick", ZeroTypo: []string{"quick"}})
	brown := queryterm.NewWord(1, queryterm.Derivations{Original: "brown", ZeroTypo: []string{"brown"}})
	qg, err := querygraph.Build([]queryterm.LocatedQueryTerm{quick, brown}, 2)
	require.NoError(t, err)
	return qg
}

func TestBuildEdges_OneConditionalEdgePerProximityPlusFallback(t *testing.T) {
	qg := buildQuickBrownGraph(t)
	trait := proximity.Trait{}

	g, err := rankgraph.Build[proximity.EdgeData](qg, trait)
	require.NoError(t, err)

	termNode := qg.Successors(querygraph.StartIndex)[0]

	edges := g.SuccessorEdges(termNode)
	// (MaxDistance - 1) conditional edges, one per prox in [1, MaxDistance), plus one fallback.
	assert.Len(t, edges, int(bitmap.MaxDistance))

	var sawFallback bool
	for _, eid := range edges {
		e := g.Edge(eid)
		if e.Details.Unconditional {
			sawFallback = true
			assert.Equal(t, bitmap.MaxDistance, e.Cost)
		} else {
			assert.Equal(t, e.Cost, e.Details.Data.Prox)
			assert.Equal(t, "quick", e.Details.Data.W1)
			assert.Equal(t, "brown", e.Details.Data.W2)
		}
	}
	assert.True(t, sawFallback)
}

func TestBuildEdges_StartArcIsUnconditional(t *testing.T) {
	qg := buildQuickBrownGraph(t)
	trait := proximity.Trait{}

	edges, err := trait.BuildEdges(qg, querygraph.StartIndex, qg.Successors(querygraph.StartIndex)[0])
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.True(t, edges[0].Details.Unconditional)
	assert.Equal(t, bitmap.Proximity(0), edges[0].Cost)
}

func TestResolveEdge_DelegatesToWordPairProximityDocids(t *testing.T) {
	idx := &fakeIndex{pairs: map[[3]any]bitmap.Bitmap{
		{"quick", "brown", bitmap.Proximity(1)}: bitmap.Of(1),
	}}
	db := dbcache.New(idx)
	trait := proximity.Trait{}

	got, err := trait.ResolveEdge(db, rankgraph.WithData(proximity.EdgeData{W1: "quick", W2: "brown", Prox: 1}))
	require.NoError(t, err)
	assert.Equal(t, []bitmap.DocumentID{1}, got.ToSlice())
}

func TestProximityOrdering_ResolvePathsPrefersCloserDocumentAtLowerCost(t *testing.T) {
	// D1 has "quick brown" at proximity 1, D2 at proximity 2. Resolving
	// the cost-1 paths must surface only D1; the cost-2 class must
	// surface D2.
	qg := buildQuickBrownGraph(t)
	trait := proximity.Trait{}
	g, err := rankgraph.Build[proximity.EdgeData](qg, trait)
	require.NoError(t, err)

	idx := &fakeIndex{pairs: map[[3]any]bitmap.Bitmap{
		{"quick", "brown", bitmap.Proximity(1)}: bitmap.Of(1),
		{"quick", "brown", bitmap.Proximity(2)}: bitmap.Of(2),
	}}
	db := dbcache.New(idx)
	universe := bitmap.Of(1, 2)

	termNode := qg.Successors(querygraph.StartIndex)[0]
	nextNode := qg.Successors(termNode)[0]
	startEdge := g.SuccessorEdges(querygraph.StartIndex)[0]
	endEdge := g.SuccessorEdges(nextNode)[0]

	costEdge := func(cost bitmap.Proximity) int {
		for _, eid := range g.SuccessorEdges(termNode) {
			if e := g.Edge(eid); !e.Details.Unconditional && e.Cost == cost {
				return eid
			}
		}
		t.Fatalf("no edge at cost %d", cost)
		return -1
	}

	edgeCache := rankgraph.NewEdgeDocidsCache[proximity.EdgeData](universe)
	emptyCache := rankgraph.NewEmptyPathsCache()

	costOne := rankgraph.NewPathsMap[int]()
	costOne.Insert([]int{startEdge, costEdge(1), endEdge}, 1)
	bucketOne, err := g.ResolvePaths(db, edgeCache, emptyCache, universe, costOne)
	require.NoError(t, err)
	assert.Equal(t, []bitmap.DocumentID{1}, bucketOne.ToSlice())

	costTwo := rankgraph.NewPathsMap[int]()
	costTwo.Insert([]int{startEdge, costEdge(2), endEdge}, 2)
	bucketTwo, err := g.ResolvePaths(db, edgeCache, emptyCache, universe, costTwo)
	require.NoError(t, err)
	assert.Equal(t, []bitmap.DocumentID{2}, bucketTwo.ToSlice())
}
