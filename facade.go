// Package regex is an Oniguruma-flavoured backtracking regular
// expression engine: a pattern parser (see the syntax subpackage)
// feeding a continuation-style executor (exec.go) that supports
// possessive quantifiers, atomic groups, lookaround, named
// backreferences, subroutine calls, and whole-pattern recursion.
//
// New compiles a pattern, and the returned *Regexp exposes HasMatch,
// FirstMatch, AllMatches, StringMatch, AllStringMatches, Split,
// ReplaceAll, and ReplaceFirst.
package regex

import (
	"sync"

	"github.com/onigx/regex/internal/delegate"
	"github.com/onigx/regex/syntax"
)

// Regexp is a compiled, immutable pattern. It is safe to share across
// goroutines for read-only use; every match call builds
// its own *context, so concurrent matches against the same *Regexp do
// not interfere with one another. The lazily-built delegate matcher is
// guarded by sync.Once so that property holds even for HasMatch.
type Regexp struct {
	re   *syntax.Regexp
	opts Options

	delegateOnce    sync.Once
	delegateMatcher delegate.Matcher
}

// New compiles pattern into a *Regexp, or returns a *syntax.ParseError
// describing the first compile failure.
func New(pattern string, opts ...Option) (*Regexp, error) {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	p := syntax.NewParser()
	re, err := p.Parse(pattern, o.IgnoreCase)
	if err != nil {
		return nil, err
	}
	return &Regexp{re: re, opts: o}, nil
}

// MustCompile is like New but panics on a compile error, for package
// init-time patterns whose validity is a programmer invariant.
func MustCompile(pattern string, opts ...Option) *Regexp {
	re, err := New(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the s-expression dump of the compiled AST, useful for
// debugging a pattern (grounded on syntax.Expr.String's printer).
func (re *Regexp) String() string { return re.re.Expr.String() }

// NumGroups returns the number of capturing groups, excluding group 0.
func (re *Regexp) NumGroups() int { return re.re.Groups.Count() }

// GroupNames returns every named group's name, in group-number order.
func (re *Regexp) GroupNames() []string {
	names := make([]string, 0, len(re.re.Groups.ByName))
	for n := 1; n <= re.re.Groups.Count(); n++ {
		g := re.re.Groups.ByNumber[n]
		if g != nil && g.GroupName != "" {
			names = append(names, g.GroupName)
		}
	}
	return names
}

// HasMatch reports whether input contains a match anywhere. When the
// compiled pattern kept MayDelegate set, this takes
// the fast boolean-only path through internal/delegate instead of
// running the full backtracking executor.
func (re *Regexp) HasMatch(input string) bool {
	if re.re.MayDelegate {
		if m := re.delegate(); m != nil {
			return m.MatchString(input)
		}
	}
	return re.FirstMatch(input, 0) != nil
}

// delegate lazily compiles (and caches) the fast boolean matcher for
// this pattern, translating the active Options into the inline flags
// Go's stdlib regexp syntax understands. It returns nil if delegation
// isn't possible; callers fall back to the full executor.
func (re *Regexp) delegate() delegate.Matcher {
	re.delegateOnce.Do(func() {
		var flags string
		if re.opts.IgnoreCase {
			flags += "i"
		}
		if re.opts.Multiline {
			flags += "m"
		}
		if re.opts.SingleLine {
			flags += "s"
		}
		var prefix string
		if flags != "" {
			prefix = "(?" + flags + ")"
		}
		m, err := delegate.Compile(re.re, prefix)
		if err != nil {
			return
		}
		re.delegateMatcher = m
	})
	return re.delegateMatcher
}

// FirstMatch returns the first match at or after start, or nil if
// there is none.
func (re *Regexp) FirstMatch(input string, start int) *Match {
	runes := []rune(input)
	return re.firstMatchRunes(runes, runeIndexFromByte(input, runes, start))
}

// firstMatchRunes scans forward from startRune (a code-point index),
// trying the compiled AST at each position in turn. find_longest
// changes per-position selection to the greatest-end candidate;
// find_not_empty rejects a zero-width candidate in favor of scanning
// onward.
func (re *Regexp) firstMatchRunes(input []rune, startRune int) *Match {
	for pos := startRune; pos <= len(input); pos++ {
		ctx := newContext(input, re.re, re.opts)
		if re.opts.FindLongest {
			end, snap, ok := findLongestAt(ctx, pos)
			if !ok {
				continue
			}
			ctx.byNumber = snap
			return newMatch(ctx, pos, end)
		}

		found := false
		end := pos
		exec(re.re.Expr, ctx, pos, func(e int) bool {
			if re.opts.FindNotEmpty && e == pos {
				return false
			}
			end, found = e, true
			return true
		})
		if found {
			return newMatch(ctx, pos, end)
		}
	}
	return nil
}

// findLongestAt enumerates every root candidate at pos and returns the
// one with the greatest end, along with a snapshot of the captures
// that produced it (backtracking will have rolled the live context
// back to its pre-search state by the time exec returns).
func findLongestAt(ctx *context, pos int) (end int, snapshot []Capture, ok bool) {
	best := -1
	var bestSnap []Capture
	exec(ctx.root, ctx, pos, func(e int) bool {
		if ctx.opts.FindNotEmpty && e == pos {
			return false
		}
		if e > best {
			best = e
			bestSnap = append([]Capture(nil), ctx.byNumber...)
		}
		return false
	})
	if best < 0 {
		return 0, nil, false
	}
	return best, bestSnap, true
}

// AllMatches returns every non-overlapping match from start onward:
// each subsequent scan resumes at the previous match's end, advancing
// by one code point first when that match was zero-width, to avoid
// looping forever on an empty match. Each call recomputes the result
// from scratch, so a caller can restart a scan from any offset.
func (re *Regexp) AllMatches(input string, start int) []*Match {
	runes := []rune(input)
	pos := runeIndexFromByte(input, runes, start)
	var out []*Match
	for pos <= len(runes) {
		m := re.firstMatchRunes(runes, pos)
		if m == nil {
			break
		}
		out = append(out, m)
		if m.end == m.start {
			pos = m.end + 1
		} else {
			pos = m.end
		}
	}
	return out
}

// StringMatch returns the full text of the first match, or "" with
// ok=false if there is none.
func (re *Regexp) StringMatch(input string) (string, bool) {
	m := re.FirstMatch(input, 0)
	if m == nil {
		return "", false
	}
	return m.FullText(), true
}

// AllStringMatches returns the full text of every non-overlapping
// match from start onward.
func (re *Regexp) AllStringMatches(input string, start int) []string {
	matches := re.AllMatches(input, start)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.FullText()
	}
	return out
}

// Split returns the substrings of input separated by non-overlapping
// matches. A pattern with no match returns a
// single-element slice containing input unchanged; adjacent matches
// produce an empty-string segment between them.
func (re *Regexp) Split(input string) []string {
	matches := re.AllMatches(input, 0)
	if len(matches) == 0 {
		return []string{input}
	}
	runes := []rune(input)
	out := make([]string, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		out = append(out, string(runes[prev:m.start]))
		prev = m.end
	}
	out = append(out, string(runes[prev:]))
	return out
}

// runeIndexFromByte converts a byte offset into input (as the public
// API accepts, matching Go's native string indexing convention) into
// the code-point index the executor operates on internally (see
// DESIGN.md for why positions are code-point indices).
func runeIndexFromByte(input string, runes []rune, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset >= len(input) {
		return len(runes)
	}
	return len([]rune(input[:byteOffset]))
}
