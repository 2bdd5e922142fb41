// Package memindex is an in-memory dbcache.Index, built directly from a
// small set of documents rather than a real inverted-index store. It
// exists as a demo/test fixture exercising the full lookup surface
// (word, prefix, pair-proximity, attribute). Proximity for the ordered
// pair (w1, w2) in one document is the minimum gap over the position
// pairs where w1 comes before w2 in the same attribute; w2 before w1
// records nothing for (w1, w2), and pairs bitmap.MaxDistance or more
// positions apart are not recorded at all.
package memindex

import (
	"sort"
	"strings"

	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
)

var _ dbcache.Index = (*Index)(nil)

// Document is one record to index: ordered words per attribute. Word
// order within an attribute determines proximity; attributes are
// independent token streams (no cross-attribute proximity).
type Document struct {
	ID     bitmap.DocumentID
	Fields map[bitmap.AttributeID][]string
}

// Index is an in-memory dbcache.Index built once from a fixed set of
// documents; it never changes after New returns, so it is a pure
// function of a fixed read snapshot.
type Index struct {
	words     map[string]bitmap.Bitmap
	attrWords map[attrWordKey]bitmap.Bitmap
	pairs     map[pairKey]bitmap.Bitmap
	allWords  []string // sorted, for prefix scans
}

type attrWordKey struct {
	word string
	attr bitmap.AttributeID
}

type pairKey struct {
	w1, w2 string
	prox   bitmap.Proximity
}

// New builds an Index over docs.
func New(docs []Document) *Index {
	idx := &Index{
		words:     make(map[string]bitmap.Bitmap),
		attrWords: make(map[attrWordKey]bitmap.Bitmap),
		pairs:     make(map[pairKey]bitmap.Bitmap),
	}

	wordSet := make(map[string]struct{})
	for _, doc := range docs {
		pairProxForDoc := make(map[[2]string]bitmap.Proximity)

		for attr, words := range doc.Fields {
			for pos, w := range words {
				wordSet[w] = struct{}{}
				idx.words[w] = idx.words[w].Add(doc.ID)
				key := attrWordKey{word: w, attr: attr}
				idx.attrWords[key] = idx.attrWords[key].Add(doc.ID)

				for otherPos := pos + 1; otherPos < len(words); otherPos++ {
					gap := otherPos - pos
					if gap >= int(bitmap.MaxDistance) {
						break
					}
					other := words[otherPos]
					if other == w {
						continue
					}
					recordCloser(pairProxForDoc, w, other, bitmap.Proximity(gap))
				}
			}
		}

		for pair, prox := range pairProxForDoc {
			key := pairKey{w1: pair[0], w2: pair[1], prox: prox}
			idx.pairs[key] = idx.pairs[key].Add(doc.ID)
		}
	}

	idx.allWords = make([]string, 0, len(wordSet))
	for w := range wordSet {
		idx.allWords = append(idx.allWords, w)
	}
	sort.Strings(idx.allWords)

	return idx
}

// recordCloser keeps the minimum proximity seen for an ordered pair.
func recordCloser(m map[[2]string]bitmap.Proximity, w1, w2 string, prox bitmap.Proximity) {
	key := [2]string{w1, w2}
	if existing, ok := m[key]; !ok || prox < existing {
		m[key] = prox
	}
}

// WordDocids implements dbcache.Index.
func (idx *Index) WordDocids(word string) (bitmap.Bitmap, error) {
	return idx.words[word], nil
}

// WordPrefixDocids implements dbcache.Index with a linear scan over the
// sorted vocabulary; adequate for a fixture, not for production scale.
func (idx *Index) WordPrefixDocids(prefix string) (bitmap.Bitmap, error) {
	result := bitmap.New()
	start := sort.SearchStrings(idx.allWords, prefix)
	for i := start; i < len(idx.allWords) && strings.HasPrefix(idx.allWords[i], prefix); i++ {
		result = result.Or(idx.words[idx.allWords[i]])
	}
	return result, nil
}

// WordPairProximityDocids implements dbcache.Index.
func (idx *Index) WordPairProximityDocids(w1, w2 string, prox bitmap.Proximity) (bitmap.Bitmap, error) {
	return idx.pairs[pairKey{w1: w1, w2: w2, prox: prox}], nil
}

// WordAttributeDocids implements dbcache.Index.
func (idx *Index) WordAttributeDocids(word string, attr bitmap.AttributeID) (bitmap.Bitmap, error) {
	return idx.attrWords[attrWordKey{word: word, attr: attr}], nil
}
