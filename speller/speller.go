// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package speller wires the affix index, stemmer, and compound
// segmenter/validator together into C8, the top-level recognizer:
// ICONV normalization, capitalization variants, whole-word and compound
// analysis, and BREAK-pattern recursive fallback.
package speller

import (
	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/affix"
	"github.com/az-ai-labs/hunspellgo/capitalize"
	"github.com/az-ai-labs/hunspellgo/compound"
	"github.com/az-ai-labs/hunspellgo/dic"
	"github.com/az-ai-labs/hunspellgo/internal/condition"
	"github.com/az-ai-labs/hunspellgo/stem"
	"github.com/coregx/coregex"
)

// maxBreakDepth bounds BREAK-pattern recursion, matching the cap the
// reference lookup algorithm this package is ported from uses to keep a
// pathological BREAK table from recursing forever.
const maxBreakDepth = 10

// Speller is a fully compiled recognizer for one affix table/dictionary
// pair.
type Speller struct {
	Aff       *aff.Aff
	Dic       *dic.Dic
	Stem      *stem.Stemmer
	Segmenter *compound.Segmenter
	Validator *compound.Validator
	breaks    []*coregex.Regex
}

// New compiles aff and dic into a ready-to-query Speller.
func New(a *aff.Aff, d *dic.Dic) (*Speller, error) {
	idx := affix.Build(a)
	st := stem.New(a, idx)

	seg, err := compound.NewSegmenter(a, d, st)
	if err != nil {
		return nil, err
	}
	val := compound.NewValidator(a, d, st)

	breaks := make([]*coregex.Regex, 0, len(a.BREAK))
	for _, pat := range a.BREAK {
		re, err := condition.CompileBreakPattern(pat)
		if err != nil {
			continue // a malformed BREAK row is skipped, not fatal
		}
		breaks = append(breaks, re)
	}

	return &Speller{Aff: a, Dic: d, Stem: st, Segmenter: seg, Validator: val, breaks: breaks}, nil
}

// Lookup reports whether word is accepted by the dictionary: a word
// whose exact homonyms all carry FORBIDDENWORD is rejected outright;
// otherwise ICONV normalization, capitalization
// variants, whole-word/compound analysis, and BREAK-pattern splitting
// are tried in that order.
func (s *Speller) Lookup(word string, allowNosuggest bool) bool {
	if s.Aff.FORBIDDENWORD != "" {
		homonyms := s.Dic.Homonyms(word, false)
		if len(homonyms) > 0 && allForbidden(homonyms, s.Aff.FORBIDDENWORD) {
			return false
		}
	}

	word = s.Aff.ApplyICONV(word)

	if s.isFound(word, allowNosuggest) {
		return true
	}

	return s.tryBreak(word, allowNosuggest)
}

func allForbidden(words []dic.Word, flag aff.Flag) bool {
	for _, w := range words {
		if !w.HasFlag(flag) {
			return false
		}
	}
	return true
}

// isFound tries every capitalization variant of word and reports
// whether any of them resolves to a whole-word or compound analysis.
func (s *Speller) isFound(word string, allowNosuggest bool) bool {
	captype, variants := capitalize.Variants(word)
	for _, v := range variants {
		if s.analyzeFound(v, captype, allowNosuggest) {
			return true
		}
	}
	return false
}

// analyzeFound is C8's "analyze": a direct word-form match, then
// compound-by-flags, then compound-by-rules, each gated on whether the
// affix table actually declares the relevant directives.
func (s *Speller) analyzeFound(word string, captype capitalize.Cap, allowNosuggest bool) bool {
	found := false
	s.Stem.WordForms(s.Dic, word, captype, stem.NotCompound, allowNosuggest, func(stem.WordForm) bool {
		found = true
		return false
	})
	if found {
		return true
	}

	runeWord := []rune(word)

	if s.Aff.COMPOUNDBEGIN != "" || s.Aff.COMPOUNDFLAG != "" {
		s.Segmenter.PartsByFlags(runeWord, nil, allowNosuggest, func(parts []stem.WordForm) bool {
			if !s.Validator.IsBad(parts) {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}

	if len(s.Segmenter.Rules) > 0 {
		s.Segmenter.PartsByRules(runeWord, nil, func(parts []stem.WordForm) bool {
			if !s.Validator.IsBad(parts) {
				found = true
				return false
			}
			return true
		})
	}

	return found
}

// tryBreak is the BREAK-pattern recursive fallback: word is split at
// every declared break point, recursively, up to maxBreakDepth, and
// accepted once some split's non-empty fragments are all independently
// found.
func (s *Speller) tryBreak(word string, allowNosuggest bool) bool {
	found := false
	s.enumerateBreaks(word, 0, func(parts []string) bool {
		for _, p := range parts {
			if p == "" {
				continue
			}
			if !s.isFound(p, allowNosuggest) {
				return true // this split failed, keep looking
			}
		}
		found = true
		return false
	})
	return found
}

func (s *Speller) enumerateBreaks(text string, depth int, yield func([]string) bool) bool {
	if depth > maxBreakDepth {
		return true
	}
	if !yield([]string{text}) {
		return false
	}

	data := []byte(text)
	for _, pat := range s.breaks {
		matches := pat.FindAllSubmatchIndex(data, -1)
		for _, idx := range matches {
			if len(idx) < 4 || idx[2] < 0 {
				continue
			}
			start := text[:idx[2]]
			rest := text[idx[3]:]

			cont := true
			s.enumerateBreaks(rest, depth+1, func(breaking []string) bool {
				combined := append([]string{start}, breaking...)
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
