package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/queryterm"
	"github.com/vuthanhtung2412/rankgraph/rankgraph"
	"github.com/vuthanhtung2412/rankgraph/rankgraph/attribute"
)

type fakeIndex struct{ byAttr map[bitmap.AttributeID]bitmap.Bitmap }

func (f *fakeIndex) WordDocids(string) (bitmap.Bitmap, error)       { return bitmap.New(), nil }
func (f *fakeIndex) WordPrefixDocids(string) (bitmap.Bitmap, error) { return bitmap.New(), nil }
func (f *fakeIndex) WordPairProximityDocids(string, string, bitmap.Proximity) (bitmap.Bitmap, error) {
	return bitmap.New(), nil
}
func (f *fakeIndex) WordAttributeDocids(word string, attr bitmap.AttributeID) (bitmap.Bitmap, error) {
	if b, ok := f.byAttr[attr]; ok {
		return b, nil
	}
	return bitmap.New(), nil
}

func TestBuildEdges_CostsByAttributeRank(t *testing.T) {
	term := queryterm.NewWord(0, queryterm.Derivations{Original: "quick", ZeroTypo: []string{"quick"}})
	qg, err := querygraph.Build([]queryterm.LocatedQueryTerm{term}, 1)
	require.NoError(t, err)

	trait := attribute.Trait{Order: []bitmap.AttributeID{3, 1, 7}} // title(3) > body(1) > tags(7)
	termNode := qg.Successors(querygraph.StartIndex)[0]
	edges, err := trait.BuildEdges(qg, querygraph.StartIndex, termNode)
	require.NoError(t, err)

	costByAttr := map[bitmap.AttributeID]uint8{}
	for _, c := range edges {
		costByAttr[c.Details.Data.Attr] = c.Cost
	}
	assert.Equal(t, uint8(0), costByAttr[3])
	assert.Equal(t, uint8(1), costByAttr[1])
	assert.Equal(t, uint8(2), costByAttr[7])
}

func TestResolveEdge_LooksUpChosenAttribute(t *testing.T) {
	idx := &fakeIndex{byAttr: map[bitmap.AttributeID]bitmap.Bitmap{3: bitmap.Of(10)}}
	db := dbcache.New(idx)
	trait := attribute.Trait{}

	got, err := trait.ResolveEdge(db, rankgraph.WithData(attribute.EdgeData{Word: "quick", Attr: 3}))
	require.NoError(t, err)
	assert.Equal(t, []bitmap.DocumentID{10}, got.ToSlice())
}
