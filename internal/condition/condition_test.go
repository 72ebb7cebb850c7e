package condition

import "testing"

func TestCompileSuffixCondition(t *testing.T) {
	t.Parallel()

	// SFX rule: strip "y", add "ied", condition "y" (word must end in y).
	m, err := CompileSuffixCondition("y", "y", "ied")
	if err != nil {
		t.Fatalf("CompileSuffixCondition() error = %v", err)
	}
	if !m.MatchString("tried") {
		t.Errorf("MatchString(tried) = false, want true")
	}
	if m.MatchString("tossed") {
		t.Errorf("MatchString(tossed) = true, want false")
	}
}

func TestCompileSuffixConditionCharClass(t *testing.T) {
	t.Parallel()

	// SFX rule: strip "", add "ed", condition "[^y]" (preceding char not y).
	m, err := CompileSuffixCondition("[^y]", "", "ed")
	if err != nil {
		t.Fatalf("CompileSuffixCondition() error = %v", err)
	}
	if !m.MatchString("walked") {
		t.Errorf("MatchString(walked) = false, want true")
	}
	if m.MatchString("dyed") {
		t.Errorf("MatchString(dyed) = true, want false (preceding char is y)")
	}
}

func TestCompilePrefixCondition(t *testing.T) {
	t.Parallel()

	m, err := CompilePrefixCondition(".", "", "un")
	if err != nil {
		t.Fatalf("CompilePrefixCondition() error = %v", err)
	}
	if !m.MatchString("undo") {
		t.Errorf("MatchString(undo) = false, want true")
	}
	if m.MatchString("redo") {
		t.Errorf("MatchString(redo) = true, want false")
	}
}

func TestCompileBreakPatternAnchored(t *testing.T) {
	t.Parallel()

	re, err := CompileBreakPattern("^-")
	if err != nil {
		t.Fatalf("CompileBreakPattern() error = %v", err)
	}
	if !re.MatchString("-foo") {
		t.Errorf("MatchString(-foo) = false, want true")
	}
}

func TestCompileBreakPatternUnanchored(t *testing.T) {
	t.Parallel()

	re, err := CompileBreakPattern("-")
	if err != nil {
		t.Fatalf("CompileBreakPattern() error = %v", err)
	}
	if !re.MatchString("a-b") {
		t.Errorf("MatchString(a-b) = false, want true")
	}
}

func TestNilMatcherAlwaysMatches(t *testing.T) {
	t.Parallel()
	var m *Matcher
	if !m.MatchString("anything") {
		t.Errorf("nil Matcher.MatchString() = false, want true")
	}
}
