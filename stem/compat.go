package stem

import (
	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/capitalize"
	"github.com/az-ai-labs/hunspellgo/dic"
)

// Compatible is C3: it decides whether dictWord is a legitimate backing
// entry for form, given the position form is being tried at (if any)
// within a compound, the capitalization class of the original input,
// and whether NOSUGGEST-flagged entries should count as a match at all.
func (s *Stemmer) Compatible(dictWord dic.Word, form WordForm, compoundpos CompoundPos, captype capitalize.Cap, allowNosuggest bool) bool {
	a := s.Aff

	allFlags := unionFlags(dictWord.Flags, form.AffixFlags())

	if !allowNosuggest && dictWord.HasFlag(a.NOSUGGEST) {
		return false
	}

	if a.KEEPCASE != "" && dictWord.HasFlag(a.KEEPCASE) && captype != capitalize.Guess(dictWord.Stem) {
		return false
	}

	if a.NEEDAFFIX != "" {
		affixes := form.AllAffixes()
		if dictWord.HasFlag(a.NEEDAFFIX) && len(affixes) == 0 {
			return false
		}
		if len(affixes) > 0 && allAffixesNeedAffix(affixes, a.NEEDAFFIX) {
			return false
		}
	}

	if form.Prefix != nil && !hasFlag(allFlags, form.Prefix.Flag) {
		return false
	}
	if form.Suffix != nil && !hasFlag(allFlags, form.Suffix.Flag) {
		return false
	}

	if compoundpos == NotCompound {
		return !hasFlag(allFlags, a.ONLYINCOMPOUND)
	}

	if hasFlag(allFlags, a.COMPOUNDFLAG) {
		return true
	}

	switch compoundpos {
	case Begin:
		return hasFlag(allFlags, a.COMPOUNDBEGIN)
	case End:
		return hasFlag(allFlags, a.COMPOUNDLAST)
	case Middle:
		return hasFlag(allFlags, a.COMPOUNDMIDDLE)
	default:
		return false
	}
}

func unionFlags(a, b map[aff.Flag]struct{}) map[aff.Flag]struct{} {
	out := make(map[aff.Flag]struct{}, len(a)+len(b))
	for f := range a {
		out[f] = struct{}{}
	}
	for f := range b {
		out[f] = struct{}{}
	}
	return out
}

func allAffixesNeedAffix(affixes []*aff.Entry, needaffix aff.Flag) bool {
	for _, a := range affixes {
		if !a.HasFlag(needaffix) {
			return false
		}
	}
	return true
}
