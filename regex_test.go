package regex

import (
	"errors"
	"reflect"
	"testing"

	"github.com/onigx/regex/syntax"
)

// Scenario 1: word matching and all_matches.
func TestWordMatching(t *testing.T) {
	re := MustCompile(`\w+`)
	m := re.FirstMatch("Hello world 123", 0)
	if m == nil || m.FullText() != "Hello" || m.Start() != 0 || m.End() != 5 {
		t.Fatalf("FirstMatch = %+v, want \"Hello\" at [0,5]", m)
	}
	got := re.AllStringMatches("Hello world 123", 0)
	want := []string{"Hello", "world", "123"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AllStringMatches = %v, want %v", got, want)
	}
}

// Scenario 2: named groups.
func TestNamedGroups(t *testing.T) {
	re := MustCompile(`(?<username>\w+)@(?<domain>\w+\.\w+)`)
	m := re.FirstMatch("john@example.com", 0)
	if m == nil || m.FullText() != "john@example.com" {
		t.Fatalf("FirstMatch = %+v", m)
	}
	if s, ok := m.NamedGroup("username"); !ok || s != "john" {
		t.Errorf("username = %q, %v, want \"john\", true", s, ok)
	}
	if s, ok := m.NamedGroup("domain"); !ok || s != "example.com" {
		t.Errorf("domain = %q, %v, want \"example.com\", true", s, ok)
	}
}

// Scenario 3: replace-all with a numbered template.
func TestReplaceAllTemplate(t *testing.T) {
	re := MustCompile(`(\d+)-(\d+)-(\d+)`)
	got := re.ReplaceAll("2023-12-25", "$3/$2/$1")
	if got != "25/12/2023" {
		t.Fatalf("ReplaceAll = %q, want %q", got, "25/12/2023")
	}
}

// Scenario 4: possessive quantifier does not give back digits.
func TestPossessiveNoBacktrack(t *testing.T) {
	re := MustCompile(`\d++[a-z]`)
	if s, ok := re.StringMatch("123a"); !ok || s != "123a" {
		t.Errorf("StringMatch(123a) = %q, %v, want \"123a\", true", s, ok)
	}
	if re.HasMatch("123") {
		t.Error(`HasMatch("123") = true, want false (possessive \d++ must not release digits)`)
	}
}

// Scenario 5: possessive dot-star forecloses a later match.
func TestPossessiveDotStar(t *testing.T) {
	re := MustCompile(`.*+abc`)
	if re.HasMatch("xxxabc") {
		t.Error(`HasMatch("xxxabc") = true, want false`)
	}
}

// Scenario 6: named backreference.
func TestNamedBackref(t *testing.T) {
	re := MustCompile(`(?<word>\w+)\s+\k<word>`)
	m := re.FirstMatch("hello hello world", 0)
	if m == nil || m.FullText() != "hello hello" {
		t.Fatalf("FirstMatch = %+v, want \"hello hello\"", m)
	}
	if s, ok := m.NamedGroup("word"); !ok || s != "hello" {
		t.Errorf("word = %q, %v, want \"hello\", true", s, ok)
	}
}

// Scenario 7: whole-pattern recursion matching balanced parens.
func TestWholePatternRecursion(t *testing.T) {
	re := MustCompile(`\((?:[^()]|(?R))*\)`)
	input := "(a(b(c)d)e)"
	if s, ok := re.StringMatch(input); !ok || s != input {
		t.Fatalf("StringMatch = %q, %v, want %q, true", s, ok, input)
	}
}

// Scenario 8: case-insensitive matching.
func TestIgnoreCase(t *testing.T) {
	re := MustCompile(`HELLO`, IgnoreCase())
	if !re.HasMatch("hello") {
		t.Error(`HasMatch("hello") = false, want true`)
	}
}

// Scenario 9: split.
func TestSplit(t *testing.T) {
	if got, want := MustCompile(`,`).Split("a,,b"), []string{"a", "", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Split(a,,b) = %v, want %v", got, want)
	}
	if got, want := MustCompile(`xyz`).Split("hello world"), []string{"hello world"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Split(no match) = %v, want %v", got, want)
	}
}

// Scenario 10: invalid pattern reports kind and position.
func TestInvalidPatternError(t *testing.T) {
	_, err := New(`[unclosed`)
	if err == nil {
		t.Fatal("New([unclosed) = nil error, want a compile error")
	}
	var pe *syntax.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error is not a *syntax.ParseError: %v", err)
	}
	if pe.Kind != syntax.KindInvalidPattern {
		t.Errorf("Kind = %v, want invalid_pattern", pe.Kind)
	}
	if pe.Pos < 0 {
		t.Errorf("Pos = %d, want >= 0", pe.Pos)
	}
}

// Atomic groups: same commit-to-first-success discipline as possessive
// quantifiers, just scoped to a parenthesized group instead of a
// single quantified atom.
func TestAtomicGroup(t *testing.T) {
	re := MustCompile(`(?>\d+)abc`)
	if re.HasMatch("123") {
		t.Error(`HasMatch("123") = true, want false`)
	}
	if !re.HasMatch("123abc") {
		t.Error(`HasMatch("123abc") = false, want true`)
	}
}

// A capture committed inside an atomic group (or a possessive
// quantifier) must not leak into the final result when the branch
// containing it is abandoned and a sibling alternative wins instead.
func TestAtomicGroupCaptureDoesNotLeakOnBacktrack(t *testing.T) {
	re := MustCompile(`(?:(?>(a))x|(a))`)
	m := re.FirstMatch("a", 0)
	if m == nil || m.FullText() != "a" {
		t.Fatalf("FirstMatch = %+v, want \"a\"", m)
	}
	if _, ok := m.GroupAt(1); ok {
		t.Errorf("group 1 participated, want it unset (the atomic branch lost)")
	}
	if s, ok := m.GroupAt(2); !ok || s != "a" {
		t.Errorf("group 2 = %q, %v, want \"a\", true", s, ok)
	}
}

// Same leak, via a possessive quantifier instead of an atomic group.
func TestPossessiveQuantifierCaptureDoesNotLeakOnBacktrack(t *testing.T) {
	re := MustCompile(`(?:(a)++x|(a))`)
	m := re.FirstMatch("a", 0)
	if m == nil || m.FullText() != "a" {
		t.Fatalf("FirstMatch = %+v, want \"a\"", m)
	}
	if _, ok := m.GroupAt(1); ok {
		t.Errorf("group 1 participated, want it unset (the possessive branch lost)")
	}
	if s, ok := m.GroupAt(2); !ok || s != "a" {
		t.Errorf("group 2 = %q, %v, want \"a\", true", s, ok)
	}
}

// Lookaround is zero-width and never consumes input.
func TestLookaround(t *testing.T) {
	re := MustCompile(`\w+(?=:)`)
	if s, ok := re.StringMatch("key: value"); !ok || s != "key" {
		t.Errorf("StringMatch = %q, %v, want \"key\", true", s, ok)
	}

	neg := MustCompile(`foo(?!bar)`)
	if neg.HasMatch("foobar") {
		t.Error(`HasMatch("foobar") = true, want false`)
	}
	if !neg.HasMatch("foobaz") {
		t.Error(`HasMatch("foobaz") = false, want true`)
	}
}

// Variable-length lookbehind scans backward within the length-bound
// analysis window computed by syntax.AnalyzeLength.
func TestVariableLengthLookbehind(t *testing.T) {
	re := MustCompile(`(?<=foo|quux)bar`)
	if s, ok := re.StringMatch("xxfoobar"); !ok || s != "bar" {
		t.Errorf("StringMatch(foobar) = %q, %v, want \"bar\", true", s, ok)
	}
	if s, ok := re.StringMatch("xxquuxbar"); !ok || s != "bar" {
		t.Errorf("StringMatch(quuxbar) = %q, %v, want \"bar\", true", s, ok)
	}
	if re.HasMatch("bazbar") {
		t.Error(`HasMatch("bazbar") = true, want false`)
	}
}

// Subroutine calls by name do not leak their captures to the caller.
func TestSubroutineCaptureScoping(t *testing.T) {
	re := MustCompile(`(?<digit>\d)-(?&digit)-(\d)`)
	m := re.FirstMatch("1-2-3", 0)
	if m == nil || m.FullText() != "1-2-3" {
		t.Fatalf("FirstMatch = %+v, want \"1-2-3\"", m)
	}
	if s, ok := m.NamedGroup("digit"); !ok || s != "1" {
		t.Errorf("digit = %q, %v, want \"1\", true (subroutine call must not overwrite it)", s, ok)
	}
	if s, ok := m.GroupAt(2); !ok || s != "3" {
		t.Errorf("group 2 = %q, %v, want \"3\", true", s, ok)
	}
}

// Conditional alternatives are recognized but rejected at parse time.
func TestConditionalAlternativesRejected(t *testing.T) {
	_, err := New(`(?(1)a|b)`)
	if err == nil {
		t.Fatal("New(conditional) = nil error, want a compile error")
	}
	var pe *syntax.ParseError
	if !errors.As(err, &pe) || pe.Kind != syntax.KindUnsupportedFeature {
		t.Fatalf("error = %v, want a KindUnsupportedFeature ParseError", err)
	}
}

func TestAllMatchesNonOverlapAndOrder(t *testing.T) {
	re := MustCompile(`a*`)
	matches := re.AllMatches("baaab", 0)
	prevEnd := -1
	for _, m := range matches {
		if m.Start() < prevEnd {
			t.Fatalf("match %+v starts before previous match ended at %d", m, prevEnd)
		}
		prevEnd = m.End()
	}
}

func TestReplaceAllIdempotentWhenTemplateHasNoMatch(t *testing.T) {
	re := MustCompile(`\d+`)
	once := re.ReplaceAll("a1b2c3", "X")
	twice := re.ReplaceAll(once, "X")
	if once != twice {
		t.Errorf("ReplaceAll not idempotent: once=%q twice=%q", once, twice)
	}
}
