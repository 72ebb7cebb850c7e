package stem

import (
	"testing"

	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/capitalize"
	"github.com/az-ai-labs/hunspellgo/dic"
)

func TestCompatibleRequiresAffixFlag(t *testing.T) {
	t.Parallel()

	a := aff.New()
	s := &Stemmer{Aff: a}

	sufEntry := &aff.Entry{Flag: "A", Add: "ed"}
	form := WordForm{Text: "walked", Stem: "walk", Suffix: sufEntry}

	withoutFlag := dic.Word{Stem: "walk", Flags: map[aff.Flag]struct{}{}}
	if s.Compatible(withoutFlag, form, NotCompound, capitalize.No, true) {
		t.Errorf("Compatible() = true, want false: dictionary word lacks suffix flag A")
	}

	withFlag := dic.Word{Stem: "walk", Flags: map[aff.Flag]struct{}{"A": {}}}
	if !s.Compatible(withFlag, form, NotCompound, capitalize.No, true) {
		t.Errorf("Compatible() = false, want true: dictionary word carries suffix flag A")
	}
}

func TestCompatibleNosuggestGate(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.NOSUGGEST = "N"
	s := &Stemmer{Aff: a}

	form := WordForm{Text: "word", Stem: "word"}
	word := dic.Word{Stem: "word", Flags: map[aff.Flag]struct{}{"N": {}}}

	if s.Compatible(word, form, NotCompound, capitalize.No, false) {
		t.Errorf("Compatible() = true, want false: NOSUGGEST word rejected when allowNosuggest=false")
	}
	if !s.Compatible(word, form, NotCompound, capitalize.No, true) {
		t.Errorf("Compatible() = false, want true: NOSUGGEST word accepted when allowNosuggest=true")
	}
}

func TestCompatibleKeepcaseRequiresMatchingCase(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.KEEPCASE = "K"
	s := &Stemmer{Aff: a}

	form := WordForm{Text: "Paris", Stem: "Paris"}
	word := dic.Word{Stem: "Paris", Flags: map[aff.Flag]struct{}{"K": {}}}

	if !s.Compatible(word, form, NotCompound, capitalize.Init, true) {
		t.Errorf("Compatible() = false, want true: captype matches dictionary stem's own case")
	}
	if s.Compatible(word, form, NotCompound, capitalize.All, true) {
		t.Errorf("Compatible() = true, want false: KEEPCASE forbids a differing captype")
	}
}

func TestCompatibleOnlyInCompoundOutsideCompound(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.ONLYINCOMPOUND = "O"
	a.COMPOUNDFLAG = "C"
	s := &Stemmer{Aff: a}

	form := WordForm{Text: "word", Stem: "word"}
	word := dic.Word{Stem: "word", Flags: map[aff.Flag]struct{}{"O": {}, "C": {}}}

	if s.Compatible(word, form, NotCompound, capitalize.No, true) {
		t.Errorf("Compatible() = true, want false: ONLYINCOMPOUND word rejected outside a compound")
	}
	if !s.Compatible(word, form, Begin, capitalize.No, true) {
		t.Errorf("Compatible() = false, want true inside a compound position")
	}
}

func TestCompatibleCompoundPositionFlags(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.COMPOUNDBEGIN = "B"
	a.COMPOUNDMIDDLE = "M"
	a.COMPOUNDLAST = "L"
	s := &Stemmer{Aff: a}

	form := WordForm{Text: "word", Stem: "word"}
	beginWord := dic.Word{Stem: "word", Flags: map[aff.Flag]struct{}{"B": {}}}

	if !s.Compatible(beginWord, form, Begin, capitalize.No, true) {
		t.Errorf("Compatible() = false, want true at Begin with COMPOUNDBEGIN flag")
	}
	if s.Compatible(beginWord, form, Middle, capitalize.No, true) {
		t.Errorf("Compatible() = true, want false at Middle without COMPOUNDMIDDLE flag")
	}
}
