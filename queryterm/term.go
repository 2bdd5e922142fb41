// Package queryterm models the per-token input to query graph
// construction: a surface-form word plus its typo and prefix
// derivations, positioned over the input token stream.
package queryterm

// Derivations holds every spelling variant of one input token that the
// ranking-rule graphs are allowed to match against.
type Derivations struct {
	// Original is the surface form exactly as typed.
	Original string

	// ZeroTypo is the set of exact-match variants (may include Original
	// itself plus any case/diacritic-normalized equivalents).
	ZeroTypo []string

	// OneTypo is the set of variants within edit-distance 1.
	OneTypo []string

	// TwoTypos is the set of variants within edit-distance 2.
	TwoTypos []string

	// UsePrefixDB, when true, means this token's final position should
	// additionally be expanded through a prefix index (only meaningful
	// for the last token of the query).
	UsePrefixDB bool
}

// All returns every derivation in increasing typo-distance order,
// deduplicated. Ranking-rule graphs that are typo-agnostic (e.g.
// proximity) iterate this; the typo rule graph instead inspects the
// three tiers separately to assign cost by tier.
func (d Derivations) All() []string {
	seen := make(map[string]struct{}, len(d.ZeroTypo)+len(d.OneTypo)+len(d.TwoTypos))
	out := make([]string, 0, len(d.ZeroTypo)+len(d.OneTypo)+len(d.TwoTypos))
	for _, tier := range [][]string{d.ZeroTypo, d.OneTypo, d.TwoTypos} {
		for _, w := range tier {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// TypoCost returns the number of typos (0, 1 or 2) separating word from
// the original token, or -1 if word is not one of d's derivations. Edges
// in the typo ranking-rule graph are costed from this.
func (d Derivations) TypoCost(word string) int {
	for _, w := range d.ZeroTypo {
		if w == word {
			return 0
		}
	}
	for _, w := range d.OneTypo {
		if w == word {
			return 1
		}
	}
	for _, w := range d.TwoTypos {
		if w == word {
			return 2
		}
	}
	return -1
}

// Span is the half-open range [Start, End) of input-token positions a
// LocatedQueryTerm occupies. A single word occupies [i, i+1); a fused
// phrase ("new york") occupies a longer span.
type Span struct {
	Start, End int
}

// Len reports how many input positions the span covers.
func (s Span) Len() int { return s.End - s.Start }

// LocatedQueryTerm is one candidate term at a position span of the
// original query: either a single derived word or a multi-word phrase
// fusion occupying a longer span.
type LocatedQueryTerm struct {
	Derivations Derivations
	Position    Span
}

// NewWord builds a single-position LocatedQueryTerm.
func NewWord(pos int, d Derivations) LocatedQueryTerm {
	return LocatedQueryTerm{Derivations: d, Position: Span{Start: pos, End: pos + 1}}
}

// NewPhrase builds a multi-position LocatedQueryTerm representing a
// phrase fusion spanning [start, end).
func NewPhrase(start, end int, d Derivations) LocatedQueryTerm {
	return LocatedQueryTerm{Derivations: d, Position: Span{Start: start, End: end}}
}
