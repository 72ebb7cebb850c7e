package stem

import (
	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/affix"
)

// Stemmer is the compiled C2/C3 affix-stripping and flag-compatibility
// engine: an affix index plus the Aff configuration it was built from.
type Stemmer struct {
	Aff   *aff.Aff
	Index *affix.Index
}

// New returns a Stemmer over the given compiled affix configuration and
// index.
func New(a *aff.Aff, idx *affix.Index) *Stemmer {
	return &Stemmer{Aff: a, Index: idx}
}

// TryAffixForms enumerates every candidate WordForm reachable from word
// by stripping at most one prefix and one suffix (plus, inside each of
// those, one further nested level — so up to two levels per side), and
// the unstripped whole word itself. yield is called for each candidate
// in turn; returning false stops the search early. TryAffixForms itself
// returns false iff yield returned false at some point.
func (s *Stemmer) TryAffixForms(word string, compoundpos CompoundPos, yield func(WordForm) bool) bool {
	if !yield(WordForm{Text: word, Stem: word}) {
		return false
	}

	a := s.Aff
	var suffixAllowed, prefixAllowed bool
	var prefixRequired, suffixRequired, forbidden []aff.Flag

	if compoundpos != NotCompound {
		suffixAllowed = compoundpos == End || a.COMPOUNDPERMITFLAG != ""
		prefixAllowed = compoundpos == Begin || a.COMPOUNDPERMITFLAG != ""
		if compoundpos != Begin && a.COMPOUNDPERMITFLAG != "" {
			prefixRequired = []aff.Flag{a.COMPOUNDPERMITFLAG}
		}
		if compoundpos != End && a.COMPOUNDPERMITFLAG != "" {
			suffixRequired = []aff.Flag{a.COMPOUNDPERMITFLAG}
		}
		if a.COMPOUNDFORBIDFLAG != "" {
			forbidden = []aff.Flag{a.COMPOUNDFORBIDFLAG}
		}
	} else {
		suffixAllowed = true
		prefixAllowed = true
	}

	if suffixAllowed {
		if !s.Desuffix(word, suffixRequired, forbidden, false, false, yield) {
			return false
		}
	}

	if prefixAllowed {
		keepGoing := true
		s.Deprefix(word, prefixRequired, forbidden, false, func(form WordForm) bool {
			if !yield(form) {
				keepGoing = false
				return false
			}
			if suffixAllowed && form.Prefix.CrossProduct {
				if !s.Desuffix(form.Stem, suffixRequired, forbidden, false, true, func(form2 WordForm) bool {
					form2.Prefix = form.Prefix
					form2.Text = word
					if !yield(form2) {
						keepGoing = false
						return false
					}
					return true
				}) {
					return false
				}
			}
			return true
		})
		if !keepGoing {
			return false
		}
	}

	return true
}

// Desuffix strips every SFX rule whose add-string matches the end of
// word and whose condition is satisfied, up to one nested level deep
// (nested controls which level this call represents). crossproduct, when
// true, additionally requires the SFX rule to be marked cross-product
// compatible (used when a prefix has already been stripped).
func (s *Stemmer) Desuffix(word string, requiredFlags, forbiddenFlags []aff.Flag, nested, crossproduct bool, yield func(WordForm) bool) bool {
	for _, ce := range s.Index.SuffixCandidates(word) {
		suf := ce.Entry
		if crossproduct && !suf.CrossProduct {
			continue
		}
		if !allFlagsPresent(suf.Flags, requiredFlags) {
			continue
		}
		if hasAnyFlag(suf.Flags, forbiddenFlags) {
			continue
		}
		if !ce.Matcher.MatchString(word) {
			continue
		}

		stem := stripSuffix(word, suf)

		if !yield(WordForm{Text: word, Stem: stem, Suffix: suf}) {
			return false
		}

		if !nested {
			nextRequired := append(append([]aff.Flag{}, suf.Flag), requiredFlags...)
			if !s.Desuffix(stem, nextRequired, forbiddenFlags, true, crossproduct, func(form2 WordForm) bool {
				form2.Text = word
				form2.Suffix2 = suf
				return yield(form2)
			}) {
				return false
			}
		}
	}
	return true
}

// Deprefix strips every PFX rule whose add-string matches the start of
// word and whose condition is satisfied, up to one nested level deep.
func (s *Stemmer) Deprefix(word string, requiredFlags, forbiddenFlags []aff.Flag, nested bool, yield func(WordForm) bool) bool {
	for _, ce := range s.Index.PrefixCandidates(word) {
		pre := ce.Entry
		if !allFlagsPresent(pre.Flags, requiredFlags) {
			continue
		}
		if hasAnyFlag(pre.Flags, forbiddenFlags) {
			continue
		}
		if !ce.Matcher.MatchString(word) {
			continue
		}

		stem := stripPrefix(word, pre)

		if !yield(WordForm{Text: word, Stem: stem, Prefix: pre}) {
			return false
		}

		if !nested {
			nextRequired := append(append([]aff.Flag{}, pre.Flag), requiredFlags...)
			if !s.Deprefix(stem, nextRequired, forbiddenFlags, true, func(form2 WordForm) bool {
				form2.Text = word
				form2.Prefix2 = pre
				return yield(form2)
			}) {
				return false
			}
		}
	}
	return true
}

// stripSuffix removes suf.Add from the end of word and re-adds
// suf.Strip, the inverse of what applying the suffix rule does.
func stripSuffix(word string, suf *aff.Entry) string {
	base := word
	if n := len(suf.Add); n > 0 && n <= len(base) {
		base = base[:len(base)-n]
	}
	return base + suf.Strip
}

// stripPrefix removes pre.Add from the start of word and re-adds
// pre.Strip.
func stripPrefix(word string, pre *aff.Entry) string {
	base := word
	if n := len(pre.Add); n > 0 && n <= len(base) {
		base = base[n:]
	}
	return pre.Strip + base
}
