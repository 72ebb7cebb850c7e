// Package condition compiles Hunspell affix conditions and BREAK
// patterns into matchers backed by coregex (github.com/coregx/coregex),
// a ReDoS-safe regex engine. COMPOUNDRULE patterns are compiled in
// package compound, not here.
//
// Hunspell conditions are written with lookaround ("(?<=X)Y$" for
// suffixes, "^Y(?=X)" for prefixes), which coregex's v1.0 engine does not
// support (it targets RE2 semantics). Because a condition's character
// classes each describe exactly one fixed input position, the lookaround
// is eliminated without changing behavior: "(?<=X)Y$" and "X Y $" match
// identically against the full candidate word, since the lookbehind only
// ever needs to hold at the single point immediately before the anchored
// suffix. The same substitution applies to the prefix lookahead. Only
// the boolean match result is used; stem reconstruction is done by plain
// slicing in package stem, not by regex substitution.
package condition

import (
	"strings"

	"github.com/coregx/coregex"
)

// Matcher is a compiled boolean matcher.
type Matcher struct {
	re *coregex.Regex
}

// MatchString reports whether s satisfies the compiled pattern.
func (m *Matcher) MatchString(s string) bool {
	if m == nil || m.re == nil {
		return true // empty/unconditional pattern: always applies
	}
	return m.re.MatchString(s)
}

// CompileSuffixCondition builds the matcher for an SFX entry: the word
// must end with the condition's character classes immediately followed
// by add.
func CompileSuffixCondition(rawCondition, strip, add string) (*Matcher, error) {
	tokens := tokenizeCondition(rawCondition)
	if n := len([]rune(strip)); n > 0 && n <= len(tokens) {
		tokens = tokens[:len(tokens)-n]
	}
	pattern := joinTrivial(tokens) + quoteMeta(add) + "$"
	return compilePattern(pattern)
}

// CompilePrefixCondition builds the matcher for a PFX entry: the word
// must start with add immediately followed by the condition's character
// classes.
func CompilePrefixCondition(rawCondition, strip, add string) (*Matcher, error) {
	tokens := tokenizeCondition(rawCondition)
	if n := len([]rune(strip)); n > 0 && n <= len(tokens) {
		tokens = tokens[n:]
	}
	pattern := "^" + quoteMeta(add) + joinTrivial(tokens)
	return compilePattern(pattern)
}

// joinTrivial renders a tokenized condition back to a pattern fragment,
// collapsing the "unconditional" case (no tokens, or a single ".") to
// the empty string exactly as Hunspell's own condition compiler does.
func joinTrivial(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) == 1 && tokens[0] == "." {
		return ""
	}
	return strings.Join(tokens, "")
}

func compilePattern(pattern string) (*Matcher, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re}, nil
}

// tokenizeCondition splits a Hunspell condition string into one token per
// matched input position: a bracket expression "[...]" counts as a
// single token, any other character is its own token.
func tokenizeCondition(cond string) []string {
	var tokens []string
	runes := []rune(cond)
	for i := 0; i < len(runes); {
		if runes[i] == '[' {
			j := i + 1
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j < len(runes) {
				tokens = append(tokens, string(runes[i:j+1]))
				i = j + 1
				continue
			}
		}
		tokens = append(tokens, string(runes[i]))
		i++
	}
	return tokens
}

// quoteMeta escapes regex metacharacters in a literal affix surface form.
// coregex does not export its own QuoteMeta, so this mirrors
// regexp.QuoteMeta's well-known escape set.
func quoteMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isSpecial(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSpecial(r rune) bool {
	switch r {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$':
		return true
	}
	return false
}

// CompileBreakPattern compiles one BREAK directive: anchored patterns are
// used as-is, unanchored ones are required to have one character of
// context on each side (matching spec.md §4.8).
func CompileBreakPattern(pat string) (*coregex.Regex, error) {
	if strings.HasPrefix(pat, "^") || strings.HasSuffix(pat, "$") {
		return coregex.Compile("(" + pat + ")")
	}
	return coregex.Compile(".(" + pat + ").")
}
