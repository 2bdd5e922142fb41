package rankgraph

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
)

// ResolvePaths intersects, for every Start->End path in paths, the
// universe with each edge's docids along the path, unions the
// surviving per-path bitmaps, and feeds every newly-discovered empty
// prefix back into cache so later cost classes skip it.
//
// The result is always a subset of universe; this is relied on by the
// pipeline, which passes this bucket on as the next rule's universe.
func (g *Graph[T]) ResolvePaths(
	db *dbcache.DatabaseCache,
	edgeCache *EdgeDocidsCache[T],
	emptyCache *EmptyPathsCache,
	universe bitmap.Bitmap,
	paths *PathsMap[int],
) (bitmap.Bitmap, error) {
	result := bitmap.New()

	var walkErr error
	paths.Walk(func(path []int, _ int) {
		if walkErr != nil {
			return
		}
		pathBitmap := universe
		consumed := make([]int, 0, len(path))
		for _, e := range path {
			consumed = append(consumed, e)
			edgeBitmap, wasEmpty, err := edgeCache.GetOrCompute(g, db, e)
			if err != nil {
				walkErr = err
				return
			}
			if wasEmpty {
				emptyCache.MarkEdgeEmpty(e)
			}
			pathBitmap = pathBitmap.And(edgeBitmap)
			if pathBitmap.IsEmpty() {
				emptyCache.MarkPrefixEmpty(consumed)
				return
			}
		}
		result = result.Or(pathBitmap)
	})
	if walkErr != nil {
		return bitmap.Bitmap{}, walkErr
	}

	return result, nil
}
