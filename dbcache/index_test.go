package dbcache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
)

type countingIndex struct {
	wordCalls, prefixCalls, pairCalls, attrCalls int
	wordErr                                      error
}

func (c *countingIndex) WordDocids(word string) (bitmap.Bitmap, error) {
	c.wordCalls++
	if c.wordErr != nil {
		return bitmap.Bitmap{}, c.wordErr
	}
	if word == "quick" {
		return bitmap.Of(1, 2, 3), nil
	}
	return bitmap.New(), nil
}

func (c *countingIndex) WordPrefixDocids(prefix string) (bitmap.Bitmap, error) {
	c.prefixCalls++
	return bitmap.Of(4, 5), nil
}

func (c *countingIndex) WordPairProximityDocids(w1, w2 string, prox bitmap.Proximity) (bitmap.Bitmap, error) {
	c.pairCalls++
	if w1 == "quick" && w2 == "brown" && prox == 1 {
		return bitmap.Of(1), nil
	}
	return bitmap.New(), nil
}

func (c *countingIndex) WordAttributeDocids(word string, attr bitmap.AttributeID) (bitmap.Bitmap, error) {
	c.attrCalls++
	if word == "quick" && attr == 0 {
		return bitmap.Of(1, 2), nil
	}
	return bitmap.New(), nil
}

func TestDatabaseCache_MemoizesWordDocids(t *testing.T) {
	idx := &countingIndex{}
	c := dbcache.New(idx)

	b1, err := c.WordDocids("quick")
	require.NoError(t, err)
	b2, err := c.WordDocids("quick")
	require.NoError(t, err)

	assert.Equal(t, b1.ToSlice(), b2.ToSlice())
	assert.Equal(t, 1, idx.wordCalls, "second call must be served from cache")
}

func TestDatabaseCache_MissingKeyIsEmptyNotError(t *testing.T) {
	idx := &countingIndex{}
	c := dbcache.New(idx)

	b, err := c.WordDocids("absent")
	require.NoError(t, err)
	assert.True(t, b.IsEmpty())
}

func TestDatabaseCache_StorageErrorWrapped(t *testing.T) {
	idx := &countingIndex{wordErr: errors.New("disk corrupt")}
	c := dbcache.New(idx)

	_, err := c.WordDocids("quick")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.StorageFailure))
}

func TestDatabaseCache_PairProximityMemoizedByFullKey(t *testing.T) {
	idx := &countingIndex{}
	c := dbcache.New(idx)

	_, err := c.WordPairProximityDocids("quick", "brown", 1)
	require.NoError(t, err)
	_, err = c.WordPairProximityDocids("quick", "brown", 1)
	require.NoError(t, err)
	_, err = c.WordPairProximityDocids("quick", "brown", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, idx.pairCalls, "distinct proximity must not share a cache slot")
}

func TestDatabaseCache_WordAttributeMemoizedByFullKey(t *testing.T) {
	idx := &countingIndex{}
	c := dbcache.New(idx)

	_, err := c.WordAttributeDocids("quick", 0)
	require.NoError(t, err)
	_, err = c.WordAttributeDocids("quick", 0)
	require.NoError(t, err)
	_, err = c.WordAttributeDocids("quick", 1)
	require.NoError(t, err)

	assert.Equal(t, 2, idx.attrCalls, "distinct attribute must not share a cache slot")
}

func TestDatabaseCache_ZeroProximityIsInternalError(t *testing.T) {
	idx := &countingIndex{}
	c := dbcache.New(idx)

	_, err := c.WordPairProximityDocids("quick", "brown", 0)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Internal))
}
