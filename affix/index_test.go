package affix

import (
	"testing"

	"github.com/az-ai-labs/hunspellgo/aff"
)

func buildTestAff() *aff.Aff {
	a := aff.New()
	a.SFX["A"] = []*aff.Entry{
		{Flag: "A", Strip: "", Add: "ed", Condition: "[^y]", CrossProduct: true, Flags: map[aff.Flag]struct{}{}},
		{Flag: "A", Strip: "y", Add: "ied", Condition: "y", CrossProduct: true, Flags: map[aff.Flag]struct{}{}},
	}
	a.PFX["U"] = []*aff.Entry{
		{Flag: "U", Strip: "", Add: "un", Condition: ".", CrossProduct: true, Flags: map[aff.Flag]struct{}{}},
	}
	return a
}

func TestBuildSuffixCandidates(t *testing.T) {
	t.Parallel()

	idx := Build(buildTestAff())

	candidates := idx.SuffixCandidates("walked")
	if len(candidates) != 1 {
		t.Fatalf("SuffixCandidates(walked) = %d entries, want 1", len(candidates))
	}
	if candidates[0].Entry.Add != "ed" {
		t.Errorf("candidate Add = %q, want ed", candidates[0].Entry.Add)
	}

	// "tried" ends in both "ed" and "ied" textually; SuffixCandidates
	// returns every add-string match and leaves condition filtering to
	// the caller (package stem), so both entries surface here.
	candidates = idx.SuffixCandidates("tried")
	if len(candidates) != 2 {
		t.Fatalf("SuffixCandidates(tried) = %d entries, want 2", len(candidates))
	}
}

func TestBuildPrefixCandidates(t *testing.T) {
	t.Parallel()

	idx := Build(buildTestAff())

	candidates := idx.PrefixCandidates("undo")
	if len(candidates) != 1 || candidates[0].Entry.Add != "un" {
		t.Fatalf("PrefixCandidates(undo) = %v, want single un entry", candidates)
	}

	candidates = idx.PrefixCandidates("redo")
	if len(candidates) != 0 {
		t.Errorf("PrefixCandidates(redo) = %v, want none", candidates)
	}
}

func TestBuildSkipsUnmatchedSuffix(t *testing.T) {
	t.Parallel()

	idx := Build(buildTestAff())

	candidates := idx.SuffixCandidates("cats")
	if len(candidates) != 0 {
		t.Errorf("SuffixCandidates(cats) = %v, want none (no declared suffix matches)", candidates)
	}
}
