package compound

import (
	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/capitalize"
	"github.com/az-ai-labs/hunspellgo/dic"
	"github.com/az-ai-labs/hunspellgo/stem"
)

// Segmenter is C5+C6: it tries to explain a word as a sequence of
// dictionary parts, either because each part carries the right
// COMPOUND* flag for its position, or because the sequence of parts'
// flags matches one of the affix table's COMPOUNDRULE patterns.
type Segmenter struct {
	Aff   *aff.Aff
	Dic   *dic.Dic
	Stem  *stem.Stemmer
	Rules []*Rule
}

// NewSegmenter compiles a's COMPOUNDRULE rows and wires up dic/stem for
// segmentation.
func NewSegmenter(a *aff.Aff, d *dic.Dic, st *stem.Stemmer) (*Segmenter, error) {
	rules := make([]*Rule, 0, len(a.COMPOUNDRULE))
	for _, text := range a.COMPOUNDRULE {
		r, err := NewRule(text)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return &Segmenter{Aff: a, Dic: d, Stem: st, Rules: rules}, nil
}

// PartsByFlags is C5: compound_parts_by_flags. It recurses over
// increasingly short suffixes of wordRest, trying every split point
// COMPOUNDMIN runes from each edge, accepting a split once every part's
// WordForm is flag-compatible with its compound position.
func (s *Segmenter) PartsByFlags(wordRest []rune, prevParts []stem.WordForm, allowNosuggest bool, yield func([]stem.WordForm) bool) bool {
	if len(prevParts) > 0 {
		cont := true
		s.Stem.WordForms(s.Dic, string(wordRest), capitalize.No, stem.End, allowNosuggest, func(form stem.WordForm) bool {
			if !yield([]stem.WordForm{form}) {
				cont = false
				return false
			}
			return true
		})
		if !cont {
			return false
		}
	}

	min := s.Aff.COMPOUNDMIN
	if min <= 0 {
		min = 1
	}
	if len(wordRest) < min*2 {
		return true
	}
	if s.Aff.HAS_COMPOUNDWORDSMAX && len(prevParts) >= s.Aff.COMPOUNDWORDSMAX {
		return true
	}

	compoundpos := stem.Begin
	if len(prevParts) > 0 {
		compoundpos = stem.Middle
	}

	for pos := min; pos <= len(wordRest)-min; pos++ {
		beg := wordRest[:pos]
		rest := wordRest[pos:]

		cont := true
		s.Stem.WordForms(s.Dic, string(beg), capitalize.No, compoundpos, allowNosuggest, func(form stem.WordForm) bool {
			parts := append(append([]stem.WordForm{}, prevParts...), form)
			if !s.PartsByFlags(rest, parts, allowNosuggest, func(tail []stem.WordForm) bool {
				combined := append([]stem.WordForm{form}, tail...)
				if !yield(combined) {
					cont = false
					return false
				}
				return true
			}) {
				cont = false
				return false
			}
			return true
		})
		if !cont {
			return false
		}
	}

	return true
}

// PartsByRules is C6: compound_parts_by_rules. It ignores FORBIDDENWORD
// and NOSUGGEST entirely (a documented limitation also present in the
// reference this is ported from — flag-sequence compounding never
// filters on those flags, and the CHECKCOMPOUND* validation pass does
// not check them either).
func (s *Segmenter) PartsByRules(wordRest []rune, prevParts []dic.Word, yield func([]stem.WordForm) bool) bool {
	if len(prevParts) > 0 {
		for _, homonym := range s.Dic.Homonyms(string(wordRest), false) {
			flagSets := flagSetsOf(append(append([]dic.Word{}, prevParts...), homonym))
			if anyRuleFullMatch(s.Rules, flagSets) {
				form := stem.WordForm{Text: string(wordRest), Stem: string(wordRest)}
				if !yield([]stem.WordForm{form}) {
					return false
				}
			}
		}
	}

	min := s.Aff.COMPOUNDMIN
	if min <= 0 {
		min = 1
	}
	if len(wordRest) < min*2 {
		return true
	}
	if s.Aff.HAS_COMPOUNDWORDSMAX && len(prevParts) >= s.Aff.COMPOUNDWORDSMAX {
		return true
	}

	for pos := min; pos <= len(wordRest)-min; pos++ {
		beg := wordRest[:pos]
		rest := wordRest[pos:]

		for _, homonym := range s.Dic.Homonyms(string(beg), false) {
			parts := append(append([]dic.Word{}, prevParts...), homonym)
			flagSets := flagSetsOf(parts)
			if !anyRulePartialMatch(s.Rules, flagSets) {
				continue
			}
			cont := true
			s.PartsByRules(rest, parts, func(tail []stem.WordForm) bool {
				form := stem.WordForm{Text: string(beg), Stem: string(beg)}
				combined := append([]stem.WordForm{form}, tail...)
				if !yield(combined) {
					cont = false
					return false
				}
				return true
			})
			if !cont {
				return false
			}
		}
	}

	return true
}

func flagSetsOf(words []dic.Word) []map[aff.Flag]struct{} {
	out := make([]map[aff.Flag]struct{}, len(words))
	for i, w := range words {
		out[i] = w.Flags
	}
	return out
}

func anyRuleFullMatch(rules []*Rule, flagSets []map[aff.Flag]struct{}) bool {
	for _, r := range rules {
		if r.FullMatch(flagSets) {
			return true
		}
	}
	return false
}

func anyRulePartialMatch(rules []*Rule, flagSets []map[aff.Flag]struct{}) bool {
	for _, r := range rules {
		if r.PartialMatch(flagSets) {
			return true
		}
	}
	return false
}
