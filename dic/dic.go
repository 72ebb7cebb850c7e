// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dic holds the compiled representation of a Hunspell .dic file:
// a multimap from stem to the set of dictionary words sharing that stem
// (homonyms), plus a case-insensitive index for the recognizer's
// case-folding lookup path.
package dic

import (
	"strings"

	"github.com/az-ai-labs/hunspellgo/aff"
)

// Word is one dictionary entry: a stem plus the flags attached to it in
// the .dic file.
type Word struct {
	Stem  string
	Flags map[aff.Flag]struct{}
}

// HasFlag reports whether the word carries flag f.
func (w Word) HasFlag(f aff.Flag) bool {
	if f == "" {
		return false
	}
	_, ok := w.Flags[f]
	return ok
}

// Dic is the compiled, read-only word list. Multiple Word entries may
// share a stem (homonyms): e.g. "wind" the noun and "wind" the verb,
// filed under different flag sets.
type Dic struct {
	byStem     map[string][]Word
	byFoldStem map[string][]Word
}

// New returns an empty Dic.
func New() *Dic {
	return &Dic{
		byStem:     make(map[string][]Word),
		byFoldStem: make(map[string][]Word),
	}
}

// Add inserts a dictionary word.
func (d *Dic) Add(w Word) {
	d.byStem[w.Stem] = append(d.byStem[w.Stem], w)
	fold := strings.ToLower(w.Stem)
	d.byFoldStem[fold] = append(d.byFoldStem[fold], w)
}

// Homonyms returns every dictionary word filed under stem. When
// ignorecase is true, the stem is matched under a locale-neutral case
// fold instead of exact equality.
func (d *Dic) Homonyms(stem string, ignorecase bool) []Word {
	if ignorecase {
		return d.byFoldStem[strings.ToLower(stem)]
	}
	return d.byStem[stem]
}

// Stems returns every distinct stem in the dictionary, in no particular
// order. Used by the suggestion generator to scan for near-misses.
func (d *Dic) Stems() []string {
	out := make([]string, 0, len(d.byStem))
	for stem := range d.byStem {
		out = append(out, stem)
	}
	return out
}
