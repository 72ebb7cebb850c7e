package compound

import (
	"testing"

	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/dic"
	"github.com/az-ai-labs/hunspellgo/stem"
)

func TestHasTripleLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		left, right string
		want        bool
	}{
		{"schiff", "fahrt", true}, // left ends "ff", right starts "f" -> "fff"
		{"box", "xxtra", true},    // left ends "x", right starts "xx" -> "xxx"
		{"car", "toon", false},
		{"see", "eel", true}, // left ends "ee", right starts "e" -> "eee"
	}

	for _, tt := range tests {
		if got := hasTripleLetter(tt.left, tt.right); got != tt.want {
			t.Errorf("hasTripleLetter(%q, %q) = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
}

func TestBadCompoundCase(t *testing.T) {
	t.Parallel()

	if !badCompoundCase("foo", "Bar") {
		t.Errorf("badCompoundCase(foo, Bar) = false, want true: right starts uppercase")
	}
	if badCompoundCase("foo", "bar") {
		t.Errorf("badCompoundCase(foo, bar) = true, want false")
	}
	if badCompoundCase("foo-", "bar") {
		t.Errorf("badCompoundCase(foo-, bar) = true, want false: hyphen is exempt")
	}
}

func TestValidatorIsBadForbidFlag(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.COMPOUNDFORBIDFLAG = "X"
	d := dic.New()
	d.Add(dic.Word{Stem: "fore", Flags: map[aff.Flag]struct{}{"X": {}}})

	v := &Validator{Aff: a, Dic: d}
	parts := []stem.WordForm{{Text: "fore", Stem: "fore"}, {Text: "word", Stem: "word"}}

	if !v.IsBad(parts) {
		t.Errorf("IsBad() = false, want true: left part carries COMPOUNDFORBIDFLAG")
	}
}

func TestValidatorIsBadTriple(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.CHECKCOMPOUNDTRIPLE = true
	d := dic.New()

	v := &Validator{Aff: a, Dic: d}
	parts := []stem.WordForm{{Text: "schiff", Stem: "schiff"}, {Text: "fahrt", Stem: "fahrt"}}

	if !v.IsBad(parts) {
		t.Errorf("IsBad() = false, want true: boundary has a triple letter")
	}
}

func TestValidatorIsBadPatternComparesStemNotSurface(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.CHECKCOMPOUNDPATTERN = true
	a.CompoundPatternRules = []aff.CompoundPatternRule{{Left: "cat", Right: "dog"}}
	d := dic.New()

	v := NewValidator(a, d, nil)

	// The surface text carries suffixes the pattern was never written
	// against ("cats"/"dogs" don't end/start with "cat"/"dog"), but the
	// underlying stems do: the pattern must still fire.
	parts := []stem.WordForm{
		{Text: "cats", Stem: "cat"},
		{Text: "dogs", Stem: "dog"},
	}

	if !v.IsBad(parts) {
		t.Errorf("IsBad() = false, want true: CHECKCOMPOUNDPATTERN must match on stems, not affixed surface text")
	}
}

func TestValidatorAcceptsCleanCompound(t *testing.T) {
	t.Parallel()

	a := aff.New()
	a.CHECKCOMPOUNDTRIPLE = true
	a.CHECKCOMPOUNDCASE = true
	d := dic.New()

	v := &Validator{Aff: a, Dic: d}
	parts := []stem.WordForm{{Text: "house", Stem: "house"}, {Text: "boat", Stem: "boat"}}

	if v.IsBad(parts) {
		t.Errorf("IsBad() = true, want false: clean compound boundary")
	}
}
