package stem

import (
	"testing"

	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/affix"
	"github.com/az-ai-labs/hunspellgo/capitalize"
	"github.com/az-ai-labs/hunspellgo/dic"
)

func TestWordFormsFindsBaseWord(t *testing.T) {
	t.Parallel()

	a := aff.New()
	idx := affix.Build(a)
	s := New(a, idx)

	d := dic.New()
	d.Add(dic.Word{Stem: "cat", Flags: map[aff.Flag]struct{}{}})

	found := false
	s.WordForms(d, "cat", capitalize.No, NotCompound, true, func(f WordForm) bool {
		found = true
		return true
	})
	if !found {
		t.Errorf("WordForms(cat) found nothing, want the base dictionary entry")
	}
}

func TestWordFormsForbiddenWordAbortsEntireSearch(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.FORBIDDENWORD = "F"
	a.SFX["A"] = []*aff.Entry{
		{Flag: "A", Strip: "", Add: "s", Condition: ".", CrossProduct: true, Flags: map[aff.Flag]struct{}{}},
	}
	idx := affix.Build(a)
	s := New(a, idx)

	d := dic.New()
	d.Add(dic.Word{Stem: "cat", Flags: map[aff.Flag]struct{}{"F": {}}})

	found := false
	cont := s.WordForms(d, "cats", capitalize.No, NotCompound, true, func(f WordForm) bool {
		found = true
		return true
	})

	if found {
		t.Errorf("WordForms(cats) yielded a form, want none: forbidden stem must abort the whole search")
	}
	if cont {
		t.Errorf("WordForms() = true, want false: search should report it stopped early")
	}
}

func TestWordFormsRespectsAllowNosuggest(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.NOSUGGEST = "N"
	idx := affix.Build(a)
	s := New(a, idx)

	d := dic.New()
	d.Add(dic.Word{Stem: "slang", Flags: map[aff.Flag]struct{}{"N": {}}})

	found := false
	s.WordForms(d, "slang", capitalize.No, NotCompound, false, func(f WordForm) bool {
		found = true
		return true
	})
	if found {
		t.Errorf("WordForms(slang, allowNosuggest=false) found a match, want none")
	}

	found = false
	s.WordForms(d, "slang", capitalize.No, NotCompound, true, func(f WordForm) bool {
		found = true
		return true
	})
	if !found {
		t.Errorf("WordForms(slang, allowNosuggest=true) found nothing, want the NOSUGGEST entry")
	}
}
