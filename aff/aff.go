// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aff holds the compiled representation of a Hunspell .aff file
// and a parser for the subset of the format this module's recognizer
// needs (flag declarations, SFX/PFX tables, compounding and conversion
// directives). It owns no analysis logic: the affix/stem/compound
// packages consume the Aff struct as a read-only configuration record.
package aff

import (
	"sort"
	"strings"
	"sync"

	"github.com/az-ai-labs/hunspellgo/internal/condition"
)

// Flag is a single affix/dictionary-entry tag, normally one character but
// kept as a string so long (2-char) and numeric FLAG encodings both fit.
type Flag string

// Entry is one PFX or SFX rule.
type Entry struct {
	Flag         Flag   // the flag this affix is filed under
	Strip        string // string to re-add to the stem to undo this affix
	Add          string // surface string this affix contributes
	Condition    string // raw condition pattern, e.g. "[^aeiou]" or "."
	CrossProduct bool   // may combine with an affix of the other kind
	Flags        map[Flag]struct{}
}

// HasFlag reports whether the affix entry itself carries flag f (an affix
// can carry flags the way a dictionary word does, e.g. a NEEDAFFIX suffix).
func (e *Entry) HasFlag(f Flag) bool {
	_, ok := e.Flags[f]
	return ok
}

// ConvPair is an ICONV/OCONV or REP replacement pair.
type ConvPair struct {
	From string
	To   string
}

// CompoundPatternRule is one CHECKCOMPOUNDPATTERN row.
type CompoundPatternRule struct {
	Left        string
	Right       string
	Replacement string
}

// Aff is the compiled, read-only configuration produced by parsing a
// .aff file. All recognizer packages treat it as immutable.
type Aff struct {
	SFX map[Flag][]*Entry
	PFX map[Flag][]*Entry

	FORBIDDENWORD      Flag
	NOSUGGEST          Flag
	KEEPCASE           Flag
	NEEDAFFIX          Flag
	ONLYINCOMPOUND     Flag
	COMPOUNDFLAG       Flag
	COMPOUNDBEGIN      Flag
	COMPOUNDMIDDLE     Flag
	COMPOUNDLAST       Flag
	COMPOUNDPERMITFLAG Flag
	COMPOUNDFORBIDFLAG Flag

	COMPOUNDMIN          int
	COMPOUNDWORDSMAX     int // consulted only when HAS_COMPOUNDWORDSMAX is set
	HAS_COMPOUNDWORDSMAX bool

	CHECKCOMPOUNDCASE    bool
	CHECKCOMPOUNDTRIPLE  bool
	CHECKCOMPOUNDREP     bool
	CHECKCOMPOUNDPATTERN bool

	ICONV []ConvPair
	REP   []ConvPair
	BREAK []string

	COMPOUNDRULE         []string
	CompoundPatternRules []CompoundPatternRule

	iconvOnce   sync.Once
	iconvSorted []ConvPair
	repOnce     sync.Once
	repTable    *condition.ConvTable
}

// New returns an empty Aff with COMPOUNDMIN defaulted to 3, as Hunspell
// does when the .aff file omits the directive.
func New() *Aff {
	return &Aff{
		SFX:         make(map[Flag][]*Entry),
		PFX:         make(map[Flag][]*Entry),
		COMPOUNDMIN: 3,
	}
}

// AllSuffixes returns every SFX entry across all flags, in a deterministic
// (flag, then declaration) order — used by affix.Build to populate the trie.
func (a *Aff) AllSuffixes() []*Entry {
	return allEntries(a.SFX)
}

// AllPrefixes returns every PFX entry across all flags, in a deterministic
// (flag, then declaration) order.
func (a *Aff) AllPrefixes() []*Entry {
	return allEntries(a.PFX)
}

func allEntries(m map[Flag][]*Entry) []*Entry {
	flags := make([]Flag, 0, len(m))
	for f := range m {
		flags = append(flags, f)
	}
	sortFlags(flags)

	var out []*Entry
	for _, f := range flags {
		out = append(out, m[f]...)
	}
	return out
}

func sortFlags(flags []Flag) {
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })
}

// ApplyICONV rewrites word by applying every ICONV pair as a plain
// replace-all, pairs sorted by output length descending so a longer
// replacement for an overlapping "from" pattern is applied before a
// shorter one that would otherwise shadow it (e.g. pairs a->X, aa->Y
// applied to "aa" yield "XX", matching the output-length-first order
// the reference lookup implementation sorts ICONV by).
func (a *Aff) ApplyICONV(word string) string {
	a.iconvOnce.Do(func() {
		a.iconvSorted = sortedByOutputLenDesc(a.ICONV)
	})
	for _, p := range a.iconvSorted {
		if p.From == "" {
			continue
		}
		word = strings.ReplaceAll(word, p.From, p.To)
	}
	return word
}

// sortedByOutputLenDesc returns a copy of pairs ordered by descending
// output length, breaking ties by original declaration order.
func sortedByOutputLenDesc(pairs []ConvPair) []ConvPair {
	out := make([]ConvPair, len(pairs))
	copy(out, pairs)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].To) > len(out[j].To)
	})
	return out
}

// ApplyREP returns the REP-table rewrite of word. Compound validation's
// CHECKCOMPOUNDREP pass and the suggestion generator do not call it:
// they apply REP pairs one site at a time with their own helpers.
func (a *Aff) ApplyREP(word string) string {
	a.repOnce.Do(func() {
		a.repTable = buildConvTable(a.REP)
	})
	return a.repTable.Apply(word)
}

func buildConvTable(pairs []ConvPair) *condition.ConvTable {
	if len(pairs) == 0 {
		return nil
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.From == "" {
			continue
		}
		m[p.From] = p.To
	}
	if len(m) == 0 {
		return nil
	}
	table, err := condition.NewConvTable(m)
	if err != nil {
		// A malformed conversion table degrades to a no-op rather than
		// aborting the whole recognizer: lookup should still work.
		return nil
	}
	return table
}
