package rankgraph

// EmptyPathsCache is a pair of pruning aids: edges known to resolve to
// the empty bitmap under the current universe, and path prefixes known
// to intersect down to empty regardless of how they're extended. Both
// sets only grow within one start_iteration lifetime, which is what
// guarantees the K-cheapest-paths enumeration terminates.
type EmptyPathsCache struct {
	// EmptyEdges is the set of edge ids whose docids resolve to empty.
	EmptyEdges map[int]struct{}

	// EmptyPrefixes records edge-id sequences known to collapse to
	// empty; any path beginning with one of these is skipped without
	// resolving it.
	EmptyPrefixes *PathsMap[struct{}]

	// EmptyCoupleOfEdges maps an edge id to the set of edge ids e' such
	// that (e, e') together resolve to empty even though each resolves
	// to something non-empty alone. This conservative implementation
	// leaves it always empty, which loses some pruning power but never
	// loses correctness (any path it could have pruned is still caught
	// by EmptyPrefixes once actually tried).
	EmptyCoupleOfEdges map[int]map[int]struct{}
}

// NewEmptyPathsCache returns an empty cache, scoped to one
// start_iteration lifetime.
func NewEmptyPathsCache() *EmptyPathsCache {
	return &EmptyPathsCache{
		EmptyEdges:         make(map[int]struct{}),
		EmptyPrefixes:      NewPathsMap[struct{}](),
		EmptyCoupleOfEdges: make(map[int]map[int]struct{}),
	}
}

// MarkEdgeEmpty records e as resolving to the empty bitmap.
func (c *EmptyPathsCache) MarkEdgeEmpty(e int) {
	c.EmptyEdges[e] = struct{}{}
}

// IsEdgeEmpty reports whether e is known to resolve to empty.
func (c *EmptyPathsCache) IsEdgeEmpty(e int) bool {
	_, ok := c.EmptyEdges[e]
	return ok
}

// MarkPrefixEmpty records prefix as known to collapse to empty.
func (c *EmptyPathsCache) MarkPrefixEmpty(prefix []int) {
	c.EmptyPrefixes.Insert(prefix, struct{}{})
}

// IsPrefixKnownEmpty reports whether some prefix of path (including path
// itself) is already known to be empty.
func (c *EmptyPathsCache) IsPrefixKnownEmpty(path []int) bool {
	return c.EmptyPrefixes.HasPrefixOf(path)
}

// HasCoupleEmpty reports whether (e, e') is a recorded empty couple.
func (c *EmptyPathsCache) HasCoupleEmpty(e, ePrime int) bool {
	partners, ok := c.EmptyCoupleOfEdges[e]
	if !ok {
		return false
	}
	_, ok = partners[ePrime]
	return ok
}
