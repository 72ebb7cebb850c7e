// Package suggest generates spelling-correction candidates for a word
// the speller rejects: REP-table rewrites and dictionary stems within a
// small edit distance, ranked closest-first.
//
// Edit distance is implemented directly against the standard library:
// no example in this module's retrieval pack carries a string-distance
// or fuzzy-matching dependency, so there is nothing in the corpus to
// ground a third-party choice on here.
package suggest

import (
	"sort"

	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/speller"
)

// Suggester proposes corrections for words a Speller rejects.
type Suggester struct {
	Speller *speller.Speller
	Limit   int
}

// New returns a Suggester backed by sp, returning at most limit
// candidates per call (0 means unbounded).
func New(sp *speller.Speller, limit int) *Suggester {
	return &Suggester{Speller: sp, Limit: limit}
}

// candidate is one ranked suggestion.
type candidate struct {
	word     string
	distance int
}

// Suggest returns ranked spelling corrections for word. REP-table
// rewrites that the speller accepts outright are always ranked first
// (distance 0), ahead of any dictionary stem reached by edit distance.
func (s *Suggester) Suggest(word string) []string {
	seen := make(map[string]struct{})
	var candidates []candidate

	for _, rep := range s.repRewrites(word) {
		if _, ok := seen[rep]; ok {
			continue
		}
		seen[rep] = struct{}{}
		if s.Speller.Lookup(rep, true) {
			candidates = append(candidates, candidate{word: rep, distance: 0})
		}
	}

	for _, stem := range s.Speller.Dic.Stems() {
		if _, ok := seen[stem]; ok {
			continue
		}
		d := damerauLevenshtein(word, stem)
		if d > maxCandidateDistance(word) {
			continue
		}
		seen[stem] = struct{}{}
		candidates = append(candidates, candidate{word: stem, distance: d})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	limit := s.Limit
	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}

	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = candidates[i].word
	}
	return out
}

func maxCandidateDistance(word string) int {
	if len([]rune(word)) <= 4 {
		return 1
	}
	return 2
}

// repRewrites applies every REP pair once, at every position it occurs,
// the same boundary-rewrite idea compound.Validator uses for
// CHECKCOMPOUNDREP.
func (s *Suggester) repRewrites(word string) []string {
	var out []string
	for _, p := range s.Speller.Aff.REP {
		out = append(out, applyRepAll(word, p)...)
	}
	return out
}

func applyRepAll(word string, p aff.ConvPair) []string {
	if p.From == "" {
		return nil
	}
	var out []string
	for i := 0; i+len(p.From) <= len(word); i++ {
		if word[i:i+len(p.From)] == p.From {
			out = append(out, word[:i]+p.To+word[i+len(p.From):])
		}
	}
	return out
}

// damerauLevenshtein computes the edit distance between a and b,
// counting single-character insertions, deletions, substitutions, and
// adjacent transpositions as one edit each.
func damerauLevenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min3(
				d[i-1][j]+1,
				d[i][j-1]+1,
				d[i-1][j-1]+cost,
			)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = min2(d[i][j], d[i-2][j-2]+1)
			}
		}
	}

	return d[la][lb]
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c int) int {
	return min2(min2(a, b), c)
}
