// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compound implements C5-C7: recognizing a word as a sequence
// of dictionary parts, either by each part carrying a COMPOUND* flag or
// by the whole flag sequence matching a COMPOUNDRULE pattern, and
// rejecting sequences a CHECKCOMPOUND* directive forbids.
package compound

import (
	"regexp"
	"strings"

	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/coregx/coregex"
)

// Rule is one compiled COMPOUNDRULE: a flag-sequence pattern such as
// "A*BC?" where each letter is a flag a compound-part dictionary word
// must carry at that position.
type Rule struct {
	text    string
	flags   map[aff.Flag]struct{}
	full    *coregex.Regex
	partial *coregex.Regex
}

var ruleTokenRe = regexp.MustCompile(`[^*?][*?]?`)

// NewRule compiles one COMPOUNDRULE row.
func NewRule(text string) (*Rule, error) {
	flags := make(map[aff.Flag]struct{})
	for _, r := range text {
		if r == '*' || r == '?' {
			continue
		}
		flags[aff.Flag(string(r))] = struct{}{}
	}

	full, err := coregex.Compile("^" + text + "$")
	if err != nil {
		return nil, err
	}

	tokens := ruleTokenRe.FindAllString(text, -1)
	partialPattern := buildPartialPattern(tokens)
	partial, err := coregex.Compile("^" + partialPattern + "$")
	if err != nil {
		return nil, err
	}

	return &Rule{text: text, flags: flags, full: full, partial: partial}, nil
}

// buildPartialPattern nests the rule's tokens from right to left so that
// any prefix of the full sequence, not just the complete one, can match:
// "A", "B", "C" becomes "A(B(C)?)?" — a compound being assembled word by
// word is legitimate as soon as the flags seen so far satisfy some
// leading prefix of the rule.
func buildPartialPattern(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	acc := tokens[len(tokens)-1]
	for i := len(tokens) - 2; i >= 0; i-- {
		acc = tokens[i] + "(" + acc + ")?"
	}
	return acc
}

// FullMatch reports whether some combination of each word's flags,
// restricted to the characters this rule cares about, fully matches the
// rule end to end.
func (r *Rule) FullMatch(flagSets []map[aff.Flag]struct{}) bool {
	return r.matchesAny(flagSets, r.full)
}

// PartialMatch reports whether some combination matches a (possibly
// incomplete, left-anchored) prefix of the rule.
func (r *Rule) PartialMatch(flagSets []map[aff.Flag]struct{}) bool {
	return r.matchesAny(flagSets, r.partial)
}

func (r *Rule) matchesAny(flagSets []map[aff.Flag]struct{}, re *coregex.Regex) bool {
	relevant := make([][]string, len(flagSets))
	for i, fs := range flagSets {
		var chars []string
		for f := range fs {
			if _, ok := r.flags[f]; ok {
				chars = append(chars, string(f))
			}
		}
		if len(chars) == 0 {
			return false
		}
		relevant[i] = chars
	}
	return anyCombination(relevant, "", re)
}

// anyCombination walks the cartesian product of relevant[i..], trying
// each resulting flag string against re, short-circuiting on the first
// match (flag tables are small, so the product rarely grows large).
func anyCombination(relevant [][]string, acc string, re *coregex.Regex) bool {
	if len(relevant) == 0 {
		return re.MatchString(acc)
	}
	for _, c := range relevant[0] {
		if anyCombination(relevant[1:], acc+c, re) {
			return true
		}
	}
	return false
}

// Pattern is one compiled CHECKCOMPOUNDPATTERN row: a ban on a specific
// left-ending/right-starting boundary (flags are deliberately not
// consulted — Hunspell's own pattern check only ever compares the
// literal stem text at the boundary).
type Pattern struct {
	leftStem  string
	rightStem string
}

// NewPattern compiles one CompoundPatternRule.
func NewPattern(rule aff.CompoundPatternRule) *Pattern {
	return &Pattern{
		leftStem:  stemPart(rule.Left),
		rightStem: stemPart(rule.Right),
	}
}

func stemPart(s string) string {
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// Match reports whether this pattern bans the left/right boundary.
// leftStem and rightStem are the compound parts' dictionary stems, not
// their (possibly affixed) surface forms.
func (p *Pattern) Match(leftStem, rightStem string) bool {
	return strings.HasSuffix(leftStem, p.leftStem) && strings.HasPrefix(rightStem, p.rightStem)
}
