package syntax

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, pattern string) *Regexp {
	t.Helper()
	re, err := NewParser().Parse(pattern, false)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return re
}

func TestParserDump(t *testing.T) {
	tests := []struct {
		input string
		dump  string
	}{
		{`x`, `"x"`},
		{`xy`, `(seq "x" "y")`},
		{`x|y`, `(alt "x" "y")`},
		{`(x)`, `(capture #1 "x")`},
		{`(?:x)`, `(group "x")`},
		{`(?<foo>x)`, `(capture #1 "foo" "x")`},
		{`x*`, `(repeat{0,inf,greedy} "x")`},
		{`x*?`, `(repeat{0,inf,lazy} "x")`},
		{`x*+`, `(repeat{0,inf,possessive} "x")`},
		{`x{2,5}`, `(repeat{2,5,greedy} "x")`},
		{`(?>x)`, `(atomic "x")`},
		{`(?=x)`, `(lookahead-pos "x")`},
		{`(?!x)`, `(lookahead-neg "x")`},
		{`(?<=x)`, `(lookbehind-pos "x")`},
		{`(?<!x)`, `(lookbehind-neg "x")`},
	}
	for _, tt := range tests {
		re := mustParse(t, tt.input)
		got := re.Expr.String()
		if got != tt.dump {
			t.Errorf("Parse(%q).Expr.String() = %q, want %q", tt.input, got, tt.dump)
		}
	}
}

func TestParserGroupTable(t *testing.T) {
	re := mustParse(t, `(a)(?<mid>b)(c)`)
	if n := re.Groups.Count(); n != 3 {
		t.Fatalf("Count() = %d, want 3", n)
	}
	if num, ok := re.Groups.ByName["mid"]; !ok || num != 2 {
		t.Fatalf("ByName[mid] = (%d, %v), want (2, true)", num, ok)
	}
}

func TestParserMayDelegate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`abc`, true},
		{`a|b`, true},
		{`a++`, false},
		{`(?>a)`, false},
		{`(?=a)`, false},
		{`(?<name>a)\k<name>`, false},
		{`(?R)`, false},
	}
	for _, tt := range tests {
		re, err := NewParser().Parse(tt.input, false)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if re.MayDelegate != tt.want {
			t.Errorf("Parse(%q).MayDelegate = %v, want %v", tt.input, re.MayDelegate, tt.want)
		}
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{`[unclosed`, ErrUnclosedClass},
		{`(unclosed`, ErrUnclosedGroup},
		{`a)`, ErrStrayParen},
		{`(?<>x)`, ErrEmptyGroupName},
		{`a{2,1}`, ErrMalformedRepeat},
		{`(?<dup>a)(?<dup>b)`, ErrDuplicateGroupName},
		{`\k<nope>`, ErrUnknownBackref},
		{`(?&nope)`, ErrUnknownSubroutine},
	}
	for _, tt := range tests {
		_, err := NewParser().Parse(tt.input, false)
		if err == nil {
			t.Errorf("Parse(%q): want error wrapping %v, got nil", tt.input, tt.wantErr)
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q): error %v does not wrap %v", tt.input, err, tt.wantErr)
		}
		var pe *ParseError
		if errors.As(err, &pe) && pe.Pattern != tt.input {
			t.Errorf("Parse(%q): ParseError.Pattern = %q", tt.input, pe.Pattern)
		}
	}
}

func TestParserConditionalRejected(t *testing.T) {
	_, err := NewParser().Parse(`(?(1)a|b)`, false)
	if err == nil {
		t.Fatal("Parse(conditional alternative): want error, got nil")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse(conditional alternative): error is not a *ParseError: %v", err)
	}
	if pe.Kind != KindUnsupportedFeature {
		t.Errorf("Kind = %v, want %v", pe.Kind, KindUnsupportedFeature)
	}
	if pe.Suggestion == "" {
		t.Error("Suggestion is empty, want a rewrite hint")
	}
}
