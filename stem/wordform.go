// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stem implements the affix-stripping and flag-compatibility
// layer of the recognizer: turning a surface word into the candidate
// (stem, affixes-applied) forms a dictionary entry could explain, and
// deciding whether a given dictionary entry actually explains a given
// candidate.
package stem

import "github.com/az-ai-labs/hunspellgo/aff"

// CompoundPos marks which position in a compound word a form is being
// tried for, or that the form is not part of compounding at all.
type CompoundPos int

const (
	// NotCompound means the lookup is not part of compound segmentation.
	NotCompound CompoundPos = iota
	Begin
	Middle
	End
)

// WordForm is one candidate analysis of a surface word: the stem left
// after (up to two levels of) affix stripping, plus the affixes applied
// to reach it. Text is always the original, unstripped surface form.
type WordForm struct {
	Text    string
	Stem    string
	Prefix  *aff.Entry
	Suffix  *aff.Entry
	Prefix2 *aff.Entry
	Suffix2 *aff.Entry
}

// IsBase reports whether this form applied no affixes at all.
func (f WordForm) IsBase() bool {
	return f.Suffix == nil && f.Prefix == nil
}

// AffixFlags returns the union of flags carried by this form's applied
// affixes (e.g. a suffix rule filed under flag 'Y' that itself carries
// flag 'Z' contributes 'Z' to the set a dictionary word is checked
// against).
func (f WordForm) AffixFlags() map[aff.Flag]struct{} {
	flags := make(map[aff.Flag]struct{})
	if f.Prefix != nil {
		for fl := range f.Prefix.Flags {
			flags[fl] = struct{}{}
		}
	}
	if f.Suffix != nil {
		for fl := range f.Suffix.Flags {
			flags[fl] = struct{}{}
		}
	}
	return flags
}

// AllAffixes returns every non-nil affix entry applied to reach this
// form, in surface order from the start of the word to its end: prefix2
// (outer), prefix (inner), suffix (inner), suffix2 (outer).
func (f WordForm) AllAffixes() []*aff.Entry {
	var out []*aff.Entry
	if f.Prefix2 != nil {
		out = append(out, f.Prefix2)
	}
	if f.Prefix != nil {
		out = append(out, f.Prefix)
	}
	if f.Suffix != nil {
		out = append(out, f.Suffix)
	}
	if f.Suffix2 != nil {
		out = append(out, f.Suffix2)
	}
	return out
}

func hasFlag(flags map[aff.Flag]struct{}, f aff.Flag) bool {
	if f == "" {
		return false
	}
	_, ok := flags[f]
	return ok
}

func hasAnyFlag(flags map[aff.Flag]struct{}, fs []aff.Flag) bool {
	for _, f := range fs {
		if hasFlag(flags, f) {
			return true
		}
	}
	return false
}

func allFlagsPresent(have map[aff.Flag]struct{}, want []aff.Flag) bool {
	for _, f := range want {
		if !hasFlag(have, f) {
			return false
		}
	}
	return true
}
