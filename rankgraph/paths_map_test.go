package rankgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuthanhtung2412/rankgraph/rankgraph"
)

func TestPathsMap_InsertAndContains(t *testing.T) {
	m := rankgraph.NewPathsMap[int]()
	assert.True(t, m.IsEmpty())

	m.Insert([]int{1, 2, 3}, 7)
	assert.False(t, m.IsEmpty())
	assert.True(t, m.ContainsPath([]int{1, 2, 3}))
	assert.False(t, m.ContainsPath([]int{1, 2}))
	assert.Equal(t, 1, m.Len())
}

func TestPathsMap_ShorterPrefixInsertSubsumesDeeperLeaf(t *testing.T) {
	m := rankgraph.NewPathsMap[struct{}]()
	m.Insert([]int{1, 2, 3}, struct{}{})
	require.True(t, m.ContainsPath([]int{1, 2, 3}))

	// Inserting the shorter prefix [1,2] must prune the deeper leaf: the
	// trie stays prefix-unique (spec invariant).
	m.Insert([]int{1, 2}, struct{}{})
	assert.True(t, m.ContainsPath([]int{1, 2}))
	assert.False(t, m.ContainsPath([]int{1, 2, 3}))
	assert.Equal(t, 1, m.Len())
}

func TestPathsMap_InsertUnderExistingPrefixIsNoop(t *testing.T) {
	m := rankgraph.NewPathsMap[struct{}]()
	m.Insert([]int{1}, struct{}{})
	m.Insert([]int{1, 2, 3}, struct{}{}) // already covered by [1]

	assert.True(t, m.ContainsPath([]int{1}))
	assert.False(t, m.ContainsPath([]int{1, 2, 3}))
	assert.Equal(t, 1, m.Len())
}

func TestPathsMap_HasPrefixOf(t *testing.T) {
	m := rankgraph.NewPathsMap[struct{}]()
	m.Insert([]int{5, 6}, struct{}{})

	assert.True(t, m.HasPrefixOf([]int{5, 6, 7, 8}))
	assert.False(t, m.HasPrefixOf([]int{5, 9}))
	assert.False(t, m.HasPrefixOf([]int{}))
}

func TestPathsMap_WalkVisitsAllLeaves(t *testing.T) {
	m := rankgraph.NewPathsMap[int]()
	m.Insert([]int{1}, 10)
	m.Insert([]int{2, 3}, 20)

	seen := map[string]int{}
	m.Walk(func(path []int, v int) {
		key := ""
		for _, e := range path {
			key += string(rune('a' + e))
		}
		seen[key] = v
	})
	assert.Len(t, seen, 2)
}
