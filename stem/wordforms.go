package stem

import (
	"github.com/az-ai-labs/hunspellgo/capitalize"
	"github.com/az-ai-labs/hunspellgo/dic"
)

// WordForms is C4: it drives TryAffixForms over word and, for each
// candidate stem, checks it against the dictionary's homonyms for a
// flag-compatible entry, yielding the WordForm once per backing
// dictionary word found.
//
// If any homonym of a non-base candidate's stem carries FORBIDDENWORD,
// the whole search is abandoned immediately — not just that candidate —
// mirroring Hunspell's rule that a forbidden stem poisons every
// affix-form built on top of it, not only the one that happened to
// surface it first.
//
// WordForms returns false iff the search stopped early, either because
// yield returned false or because a FORBIDDENWORD abort fired.
func (s *Stemmer) WordForms(d *dic.Dic, word string, captype capitalize.Cap, compoundpos CompoundPos, allowNosuggest bool, yield func(WordForm) bool) bool {
	cont := true

	s.TryAffixForms(word, compoundpos, func(form WordForm) bool {
		if compoundpos != NotCompound || !form.IsBase() {
			for _, dw := range d.Homonyms(form.Stem, false) {
				if dw.HasFlag(s.Aff.FORBIDDENWORD) {
					cont = false
					return false
				}
			}
		}

		found := false
		for _, w := range d.Homonyms(form.Stem, false) {
			if s.Compatible(w, form, compoundpos, captype, allowNosuggest) {
				found = true
				if !yield(form) {
					cont = false
					return false
				}
			}
		}

		if !found {
			for _, w := range d.Homonyms(form.Stem, true) {
				// A homonym found only by case-insensitive lookup is
				// accepted when it's genuinely case-free in the
				// dictionary, or when the input itself is ALL CAPS.
				if captype != capitalize.All && capitalize.Guess(w.Stem) != capitalize.No {
					continue
				}
				if s.Compatible(w, form, compoundpos, captype, allowNosuggest) {
					if !yield(form) {
						cont = false
						return false
					}
				}
			}
		}

		return true
	})

	return cont
}
