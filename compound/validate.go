package compound

import (
	"strings"
	"unicode"

	"github.com/az-ai-labs/hunspellgo/aff"
	"github.com/az-ai-labs/hunspellgo/capitalize"
	"github.com/az-ai-labs/hunspellgo/dic"
	"github.com/az-ai-labs/hunspellgo/stem"
)

// Validator is C7: the CHECKCOMPOUND* filters applied to a candidate
// compound segmentation after C5/C6 produced it.
type Validator struct {
	Aff      *aff.Aff
	Dic      *dic.Dic
	Stem     *stem.Stemmer
	Patterns []*Pattern
}

// NewValidator compiles a's CHECKCOMPOUNDPATTERN rows.
func NewValidator(a *aff.Aff, d *dic.Dic, st *stem.Stemmer) *Validator {
	patterns := make([]*Pattern, 0, len(a.CompoundPatternRules))
	for _, rule := range a.CompoundPatternRules {
		patterns = append(patterns, NewPattern(rule))
	}
	return &Validator{Aff: a, Dic: d, Stem: st, Patterns: patterns}
}

// IsBad reports whether the candidate compound parts should be rejected.
// Checks run in the order Hunspell applies them: COMPOUNDFORBIDFLAG,
// then (for every left/right pair of parts, not just adjacent ones)
// CHECKCOMPOUNDREP, CHECKCOMPOUNDTRIPLE, CHECKCOMPOUNDCASE, and
// CHECKCOMPOUNDPATTERN.
func (v *Validator) IsBad(parts []stem.WordForm) bool {
	a := v.Aff

	for i := 0; i < len(parts)-1; i++ {
		left := parts[i].Text

		if a.COMPOUNDFORBIDFLAG != "" {
			for _, dw := range v.Dic.Homonyms(left, false) {
				if dw.HasFlag(a.COMPOUNDFORBIDFLAG) {
					return true
				}
			}
		}

		for j := i + 1; j < len(parts); j++ {
			right := parts[j].Text

			if a.CHECKCOMPOUNDREP && v.hasRepCollision(left, right) {
				return true
			}

			if a.CHECKCOMPOUNDTRIPLE && hasTripleLetter(left, right) {
				return true
			}

			if a.CHECKCOMPOUNDCASE && badCompoundCase(left, right) {
				return true
			}

			if a.CHECKCOMPOUNDPATTERN {
				leftStem, rightStem := parts[i].Stem, parts[j].Stem
				for _, p := range v.Patterns {
					if p.Match(leftStem, rightStem) {
						return true
					}
				}
			}
		}
	}

	return false
}

// hasRepCollision reports whether some single REP substitution turns
// the left+right boundary into a standalone dictionary word — Hunspell
// treats that as evidence the compound is really a misspelling of a
// simple word, and rejects it.
func (v *Validator) hasRepCollision(left, right string) bool {
	for _, candidate := range replCandidates(left+right, v.Aff.REP) {
		found := false
		v.Stem.WordForms(v.Dic, candidate, capitalize.No, stem.NotCompound, true, func(stem.WordForm) bool {
			found = true
			return false
		})
		if found {
			return true
		}
	}
	return false
}

func hasTripleLetter(left, right string) bool {
	lr := []rune(left)
	rr := []rune(right)
	if tailSameRune(lr, 2) && len(rr) >= 1 && rr[0] == lr[len(lr)-1] {
		return true
	}
	if tailSameRune(lr, 1) && len(rr) >= 2 && rr[0] == rr[1] && rr[0] == lr[len(lr)-1] {
		return true
	}
	return false
}

func tailSameRune(runes []rune, n int) bool {
	if len(runes) < n || n == 0 {
		return false
	}
	for i := len(runes) - n; i < len(runes)-1; i++ {
		if runes[i] != runes[i+1] {
			return false
		}
	}
	return true
}

// badCompoundCase uses unicode.IsUpper rather than the reference's
// c == c.upper() (which also flags uncased boundary runes, e.g. digits
// or punctuation, as "uppercase"). This follows the literal "is
// uppercase" wording the rule is specified by; it diverges from the
// reference only at non-letter seams.
func badCompoundCase(left, right string) bool {
	lr := []rune(left)
	rr := []rune(right)
	if len(lr) == 0 || len(rr) == 0 {
		return false
	}
	l := lr[len(lr)-1]
	r := rr[0]
	if l == '-' || r == '-' {
		return false
	}
	return unicode.IsUpper(l) || unicode.IsUpper(r)
}

// replCandidates applies each REP pair once, at every position it
// occurs, producing the set of single-substitution rewrites of s.
func replCandidates(s string, reps []aff.ConvPair) []string {
	var out []string
	for _, p := range reps {
		if p.From == "" {
			continue
		}
		start := 0
		for {
			i := strings.Index(s[start:], p.From)
			if i < 0 {
				break
			}
			pos := start + i
			out = append(out, s[:pos]+p.To+s[pos+len(p.From):])
			start = pos + 1
			if start >= len(s) {
				break
			}
		}
	}
	return out
}
