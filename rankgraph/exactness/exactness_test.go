package exactness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/queryterm"
	"github.com/vuthanhtung2412/rankgraph/rankgraph/exactness"
)

func TestBuildEdges_ExactSurfaceFormIsCheapestThenPrefix(t *testing.T) {
	d := queryterm.Derivations{
		Original:    "quick",
		ZeroTypo:    []string{"quick", "quicker"},
		UsePrefixDB: true,
	}
	term := queryterm.NewWord(0, d)
	qg, err := querygraph.Build([]queryterm.LocatedQueryTerm{term}, 1)
	require.NoError(t, err)

	trait := exactness.Trait{}
	termNode := qg.Successors(querygraph.StartIndex)[0]
	edges, err := trait.BuildEdges(qg, querygraph.StartIndex, termNode)
	require.NoError(t, err)

	var exactCost, altCost, prefixCost uint8
	var sawPrefix bool
	for _, c := range edges {
		switch {
		case c.Details.Data.FromPrefix:
			prefixCost = c.Cost
			sawPrefix = true
		case c.Details.Data.Word == "quick":
			exactCost = c.Cost
		case c.Details.Data.Word == "quicker":
			altCost = c.Cost
		}
	}
	assert.True(t, sawPrefix)
	assert.Less(t, exactCost, altCost)
	assert.Less(t, altCost, prefixCost)
}
