// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affix builds the compiled affix index the recognizer probes
// when stripping a candidate surface form down to possible stems: two
// tries over the SFX/PFX tables (one keyed by each entry's "add" string
// reversed, one keyed forward), the same reversed-suffix trie shape
// package words uses to index tag statistics by word suffix, adapted
// here to index affix rules by their surface ending instead.
package affix

import (
	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/internal/condition"
)

// CompiledEntry pairs an affix rule with its pre-compiled condition
// matcher, so the stripper never recompiles a regex per lookup.
type CompiledEntry struct {
	Entry   *aff.Entry
	Matcher *condition.Matcher
}

type treeNode struct {
	children map[rune]*treeNode
	entries  []*CompiledEntry
}

func newTreeNode() *treeNode {
	return &treeNode{children: make(map[rune]*treeNode)}
}

func (n *treeNode) insert(key []rune, ce *CompiledEntry) {
	if len(key) == 0 {
		n.entries = append(n.entries, ce)
		return
	}
	child, ok := n.children[key[0]]
	if !ok {
		child = newTreeNode()
		n.children[key[0]] = child
	}
	child.insert(key[1:], ce)
}

// collect walks path (already oriented so path[0] is tried first) and
// appends every entry filed at a node visited along the way: each such
// node corresponds to a key that is a prefix of path, i.e. an affix
// whose "add" string matches the corresponding end of the surface form.
func (n *treeNode) collect(path []rune, out []*CompiledEntry) []*CompiledEntry {
	out = append(out, n.entries...)
	if len(path) == 0 {
		return out
	}
	if child, ok := n.children[path[0]]; ok {
		return child.collect(path[1:], out)
	}
	return out
}

// Index is the compiled C1 affix index: a reversed-suffix trie over SFX
// entries and a forward trie over PFX entries, both keyed by "add".
type Index struct {
	suffixRoot *treeNode
	prefixRoot *treeNode
}

// Build compiles a's SFX/PFX tables into an Index. An entry whose
// condition fails to compile is dropped rather than aborting the whole
// build, since a single malformed line in a dictionary the generator
// doesn't control should not make every other rule unusable.
func Build(a *aff.Aff) *Index {
	idx := &Index{suffixRoot: newTreeNode(), prefixRoot: newTreeNode()}

	for _, e := range a.AllSuffixes() {
		m, err := condition.CompileSuffixCondition(e.Condition, e.Strip, e.Add)
		if err != nil {
			continue
		}
		key := reversed([]rune(e.Add))
		idx.suffixRoot.insert(key, &CompiledEntry{Entry: e, Matcher: m})
	}

	for _, e := range a.AllPrefixes() {
		m, err := condition.CompilePrefixCondition(e.Condition, e.Strip, e.Add)
		if err != nil {
			continue
		}
		key := []rune(e.Add)
		idx.prefixRoot.insert(key, &CompiledEntry{Entry: e, Matcher: m})
	}

	return idx
}

// SuffixCandidates returns every SFX entry whose "add" string matches
// the end of surface, irrespective of its condition (the caller runs
// the condition check against the full surface separately, since the
// condition covers characters before the strip point too).
func (idx *Index) SuffixCandidates(surface string) []*CompiledEntry {
	path := reversed([]rune(surface))
	return idx.suffixRoot.collect(path, nil)
}

// PrefixCandidates returns every PFX entry whose "add" string matches
// the start of surface.
func (idx *Index) PrefixCandidates(surface string) []*CompiledEntry {
	path := []rune(surface)
	return idx.prefixRoot.collect(path, nil)
}

func reversed(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[len(runes)-1-i] = r
	}
	return out
}
