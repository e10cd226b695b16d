package regex

import (
	"testing"

	"github.com/onigx/regex/internal/oracle"
)

// crossCheck patterns stick to syntax regexp2 (a PCRE/.NET-flavoured
// engine) also understands, so any divergence is a real bug rather
// than a difference in recognized syntax.
func crossCheck(t *testing.T, pattern, input string) {
	t.Helper()
	re := MustCompile(pattern)
	o, err := oracle.Compile(pattern, false, false, false)
	if err != nil {
		t.Fatalf("oracle.Compile(%q): %v", pattern, err)
	}

	got := re.AllStringMatches(input, 0)
	want, err := o.AllStringMatches(input)
	if err != nil {
		t.Fatalf("oracle AllStringMatches(%q): %v", input, err)
	}
	if len(got) != len(want) {
		t.Fatalf("pattern %q on %q: this engine found %v, oracle found %v", pattern, input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pattern %q on %q: match %d = %q, oracle says %q", pattern, input, i, got[i], want[i])
		}
	}
}

func TestCrossCheckAgainstOracle(t *testing.T) {
	tests := []struct {
		pattern, input string
	}{
		{`\w+`, "Hello world 123"},
		{`(\d+)-(\d+)`, "12-25 01-02"},
		{`a+?b`, "aaab"},
		{`(?>\d+)abc`, "123abc 45abc"},
		{`foo(?!bar)`, "foobar foobaz"},
		{`\w+(?=:)`, "key: value pair"},
	}
	for _, tt := range tests {
		crossCheck(t, tt.pattern, tt.input)
	}
}
