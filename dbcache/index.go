// Package dbcache is a single-threaded memoizer over the lookups the
// ranking pipeline needs from the underlying inverted index. It is the
// leaf dependency of the whole core — every other package in this
// module reaches the storage layer only through a *DatabaseCache.
package dbcache

import (
	"fmt"

	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/bitmap"
)

// Index is the opaque, read-only inverted index the core consumes. It
// is the sole boundary to the storage engine: internals, transactions
// and ingestion never appear above this interface. Implementations
// must be pure functions of a fixed read snapshot: repeated calls with
// equal inputs return equal bitmaps, and a missing key returns the
// empty bitmap rather than an error.
type Index interface {
	// WordDocids returns the documents containing word exactly.
	WordDocids(word string) (bitmap.Bitmap, error)

	// WordPrefixDocids returns the documents containing any word with
	// the given prefix.
	WordPrefixDocids(prefix string) (bitmap.Bitmap, error)

	// WordPairProximityDocids returns the documents where w1 and w2
	// co-occur at exactly the given proximity. prox must satisfy
	// 1 <= prox < bitmap.MaxDistance; callers never materialize prox==0,
	// which would mean "same position" rather than a real distance.
	WordPairProximityDocids(w1, w2 string, prox bitmap.Proximity) (bitmap.Bitmap, error)

	// WordAttributeDocids returns the documents containing word within
	// the given attribute. This backs the attribute ranking rule and is
	// keyed the way an inverted word-to-field store is (word plus
	// attribute id); it is a supplement to the three lookups above, not
	// a replacement for them.
	WordAttributeDocids(word string, attr bitmap.AttributeID) (bitmap.Bitmap, error)
}

// pairKey and attrKey are the composite memoization keys (word and
// prefix lookups key on the plain string). A single string key would
// work but would force a Sprintf per lookup on the hot path; these keep
// the components first-class instead.
type pairKey struct {
	w1, w2 string
	prox   bitmap.Proximity
}

type attrKey struct {
	word string
	attr bitmap.AttributeID
}

// DatabaseCache memoizes Index lookups for the lifetime of one search.
// It is exclusive to its owning search: no state is shared across
// concurrent searches.
type DatabaseCache struct {
	idx Index

	words      map[string]bitmap.Bitmap
	prefixes   map[string]bitmap.Bitmap
	pairProx   map[pairKey]bitmap.Bitmap
	wordAttrs  map[attrKey]bitmap.Bitmap
}

// New constructs an empty DatabaseCache over idx.
func New(idx Index) *DatabaseCache {
	return &DatabaseCache{
		idx:       idx,
		words:     make(map[string]bitmap.Bitmap),
		prefixes:  make(map[string]bitmap.Bitmap),
		pairProx:  make(map[pairKey]bitmap.Bitmap),
		wordAttrs: make(map[attrKey]bitmap.Bitmap),
	}
}

// WordDocids returns (and memoizes) the docids for word.
func (c *DatabaseCache) WordDocids(word string) (bitmap.Bitmap, error) {
	if b, ok := c.words[word]; ok {
		return b, nil
	}
	b, err := c.idx.WordDocids(word)
	if err != nil {
		return bitmap.Bitmap{}, apperror.StorageFailuref(err, "word_docids(%q)", word)
	}
	c.words[word] = b
	return b, nil
}

// WordPrefixDocids returns (and memoizes) the docids for prefix.
func (c *DatabaseCache) WordPrefixDocids(prefix string) (bitmap.Bitmap, error) {
	if b, ok := c.prefixes[prefix]; ok {
		return b, nil
	}
	b, err := c.idx.WordPrefixDocids(prefix)
	if err != nil {
		return bitmap.Bitmap{}, apperror.StorageFailuref(err, "word_prefix_docids(%q)", prefix)
	}
	c.prefixes[prefix] = b
	return b, nil
}

// WordPairProximityDocids returns (and memoizes) the docids for (w1, w2,
// prox). An out-of-range prox converts to an Internal error instead of
// propagating: prox==0 is a programming error, never a storage
// condition.
func (c *DatabaseCache) WordPairProximityDocids(w1, w2 string, prox bitmap.Proximity) (bitmap.Bitmap, error) {
	if prox == 0 || prox >= bitmap.MaxDistance {
		return bitmap.Bitmap{}, apperror.Internalf("word_pair_proximity_docids: proximity %d out of [1, %d)", prox, bitmap.MaxDistance)
	}
	key := pairKey{w1: w1, w2: w2, prox: prox}
	if b, ok := c.pairProx[key]; ok {
		return b, nil
	}
	b, err := c.idx.WordPairProximityDocids(w1, w2, prox)
	if err != nil {
		return bitmap.Bitmap{}, apperror.StorageFailuref(err, "word_pair_proximity_docids(%q, %q, %d)", w1, w2, prox)
	}
	c.pairProx[key] = b
	return b, nil
}

// WordAttributeDocids returns (and memoizes) the docids for (word, attr).
func (c *DatabaseCache) WordAttributeDocids(word string, attr bitmap.AttributeID) (bitmap.Bitmap, error) {
	key := attrKey{word: word, attr: attr}
	if b, ok := c.wordAttrs[key]; ok {
		return b, nil
	}
	b, err := c.idx.WordAttributeDocids(word, attr)
	if err != nil {
		return bitmap.Bitmap{}, apperror.StorageFailuref(err, "word_attribute_docids(%q, %d)", word, attr)
	}
	c.wordAttrs[key] = b
	return b, nil
}

// Stats reports the number of memoized entries per lookup kind, for
// diagnostics; it is not part of the pipeline's control flow.
func (c *DatabaseCache) Stats() string {
	return fmt.Sprintf("words=%d prefixes=%d pairs=%d attrs=%d", len(c.words), len(c.prefixes), len(c.pairProx), len(c.wordAttrs))
}
