package querygraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/queryterm"
)

func word(pos int, w string) queryterm.LocatedQueryTerm {
	return queryterm.NewWord(pos, queryterm.Derivations{Original: w, ZeroTypo: []string{w}})
}

func TestBuild_LinearTwoWordQuery(t *testing.T) {
	// "quick brown": two single-word candidates, no phrase fusion.
	terms := []queryterm.LocatedQueryTerm{word(0, "quick"), word(1, "brown")}
	g, err := querygraph.Build(terms, 2)
	require.NoError(t, err)

	require.True(t, g.IsAcyclic())

	start := querygraph.StartIndex
	end := g.EndIndex()

	require.Len(t, g.Successors(start), 1)
	quickIdx := g.Successors(start)[0]
	assert.Equal(t, querygraph.KindTerm, g.Nodes[quickIdx].Kind)
	assert.Equal(t, "quick", g.Nodes[quickIdx].Term.Derivations.Original)

	require.Len(t, g.Successors(quickIdx), 1)
	brownIdx := g.Successors(quickIdx)[0]
	assert.Equal(t, "brown", g.Nodes[brownIdx].Term.Derivations.Original)

	assert.Contains(t, g.Successors(brownIdx), end)
}

func TestBuild_PhraseFusionAddsParallelSpan(t *testing.T) {
	// "new york city": single words at 0,1,2 plus a "new york" fusion
	// spanning [0,2).
	phrase := queryterm.NewPhrase(0, 2, queryterm.Derivations{Original: "new york", ZeroTypo: []string{"new york"}})
	terms := []queryterm.LocatedQueryTerm{
		word(0, "new"), word(1, "york"), word(2, "city"), phrase,
	}
	g, err := querygraph.Build(terms, 3)
	require.NoError(t, err)
	require.True(t, g.IsAcyclic())

	start := querygraph.StartIndex
	// Start must connect to both "new" (pos 0) and the phrase (pos 0).
	assert.Len(t, g.Successors(start), 2)

	var phraseIdx = -1
	for _, i := range g.Successors(start) {
		if g.Nodes[i].Term.Position.Len() == 2 {
			phraseIdx = i
		}
	}
	require.NotEqual(t, -1, phraseIdx)
	// The phrase fusion spans [0,2) so its successor must be "city" (pos 2).
	require.Len(t, g.Successors(phraseIdx), 1)
	assert.Equal(t, "city", g.Nodes[g.Successors(phraseIdx)[0]].Term.Derivations.Original)
}

func TestBuild_FullyConnectedQueryTombstonesNothing(t *testing.T) {
	// A single candidate covering the only slot builds without error.
	terms := []queryterm.LocatedQueryTerm{
		word(0, "quick"),
	}
	_, err := querygraph.Build(terms, 1)
	require.NoError(t, err)

	// "quick brown": every candidate is reachable from Start and reaches
	// End, so pruning leaves every node live (tombstoning of unreachable
	// nodes is covered by TestBuild_GapLeavesBothSidesTombstoned).
	terms2 := []queryterm.LocatedQueryTerm{
		word(0, "quick"),
		word(1, "brown"),
	}
	g, err := querygraph.Build(terms2, 2)
	require.NoError(t, err)
	for _, n := range g.Nodes {
		assert.NotEqual(t, querygraph.KindDeleted, n.Kind)
	}
}

func TestBuild_GapLeavesBothSidesTombstoned(t *testing.T) {
	// positions 0,1,2 but only candidates at 0 and 2: neither side can
	// connect through the missing middle slot, so both are unreachable
	// from End (pos 0 candidate) or from Start (pos 2 candidate).
	terms := []queryterm.LocatedQueryTerm{word(0, "quick"), word(2, "fox")}
	g, err := querygraph.Build(terms, 3)
	require.NoError(t, err)

	for _, n := range g.Nodes {
		if n.Kind == querygraph.KindTerm {
			assert.Fail(t, "expected no live term nodes, found one still live")
		}
	}
	deletedCount := 0
	for _, n := range g.Nodes {
		if n.Kind == querygraph.KindDeleted {
			deletedCount++
		}
	}
	assert.Equal(t, 2, deletedCount)
}

func TestBuild_RejectsOutOfRangeSpan(t *testing.T) {
	terms := []queryterm.LocatedQueryTerm{word(5, "ghost")}
	_, err := querygraph.Build(terms, 2)
	require.Error(t, err)
}

func TestBuild_RejectsNonPositivePositions(t *testing.T) {
	_, err := querygraph.Build(nil, 0)
	require.Error(t, err)
}

func TestBuild_EmptyCandidatesLinksStartDirectlyToEnd(t *testing.T) {
	g, err := querygraph.Build(nil, 1)
	require.NoError(t, err)
	assert.Contains(t, g.Successors(querygraph.StartIndex), g.EndIndex())
}

func TestTopologicalOrder_StartBeforeEnd(t *testing.T) {
	terms := []queryterm.LocatedQueryTerm{word(0, "quick"), word(1, "brown")}
	g, err := querygraph.Build(terms, 2)
	require.NoError(t, err)

	order, err := g.TopologicalOrder()
	require.NoError(t, err)

	pos := make(map[int]int, len(order))
	for i, idx := range order {
		pos[idx] = i
	}
	assert.Less(t, pos[querygraph.StartIndex], pos[g.EndIndex()])
}
