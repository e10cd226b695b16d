package delegate

import (
	"regexp"
	"strings"

	"github.com/onigx/regex/syntax"
)

var matcherConstructors = []func(*syntax.Expr, string) Matcher{
	suffixLiteralMatcher,
}

// optimizedMatcher tries each registered fast-path constructor against
// root in turn, returning the first one willing to handle it.
func optimizedMatcher(root *syntax.Expr, flags string) Matcher {
	for _, ctor := range matcherConstructors {
		if m := ctor(root, flags); m != nil {
			return m
		}
	}
	return nil
}

// suffixLiteralMatcher recognizes a pattern that is a sequence ending in
// a run of literal characters (`[A-Z]+_SUSPEND`): it scans for the cheap
// literal first with strings.Index and only runs the reversed head
// pattern against the text preceding a hit, instead of walking the full
// engine over every position of a potentially large input.
//
// The grammar gives every literal character its own Expr node (so a
// quantifier can bind to just the last one), so a multi-character
// suffix like "_SUSPEND" arrives as several consecutive OpLiteral
// children rather than one — this coalesces them back into a single
// search needle before handing the rest of the sequence to the
// reversed matcher.
//
// It bails whenever inline flags are active (ignore_case, multiline,
// single_line): the fallback path already re-runs the whole source
// through the host engine for those, so there is nothing to gain by
// special-casing them here too.
func suffixLiteralMatcher(root *syntax.Expr, flags string) Matcher {
	if flags != "" || root.Op != syntax.OpSeq {
		return nil
	}
	children := root.Children
	cut := len(children)
	var suffix []rune
	for cut > 0 && children[cut-1].Op == syntax.OpLiteral {
		cut--
		suffix = append([]rune(children[cut].Text), suffix...)
	}
	if len(suffix) == 0 || cut == 0 {
		return nil
	}

	head := children[0]
	if cut > 1 {
		head = &syntax.Expr{Op: syntax.OpSeq, Children: children[:cut]}
	}

	reversed, ok := reversedHeadSource(head)
	if !ok {
		return nil
	}
	re, err := regexp.Compile("^" + reversed)
	if err != nil {
		return nil
	}
	return &suffixMatcher{re: re, suffix: string(suffix)}
}

type suffixMatcher struct {
	suffix string
	re     *regexp.Regexp
}

func (m *suffixMatcher) MatchString(s string) bool {
	for {
		i := strings.Index(s, m.suffix)
		if i == -1 {
			return false
		}
		if m.re.MatchReader(newReverseRuneReader(s[:i])) {
			return true
		}
		s = s[i+len(m.suffix):]
	}
}
