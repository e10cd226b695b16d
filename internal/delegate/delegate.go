// Package delegate implements an optional fast path: for a pattern
// whose syntax.Regexp.MayDelegate bit is still set after parsing, a
// host-native regexp.Regexp (or, failing that, one of the hand-written
// matchers below) can answer a boolean "does this match" query without
// running the core backtracking executor at all. This is purely an
// optimization; the facade never calls into here to produce a
// position, capture, or replacement result, so it cannot change any
// observable match outcome.
//
// Grounded on quasilyte-regex/regex.go's CompileMatcher, generalized
// from "the only matcher this package will ever need" to "the
// fallback path of a larger engine that has its own full executor", and
// reworked to find its optimization opportunities directly in the
// already-parsed syntax.Expr tree rather than re-deriving them by
// re-parsing the source through stdlib regexp/syntax.
package delegate

import (
	"regexp"

	"github.com/onigx/regex/syntax"
)

// Matcher reflects the subset of regexp operations the fast path
// needs: a boolean "did this match anywhere" test.
type Matcher interface {
	MatchString(s string) bool
}

// Compile returns an optimized boolean matcher for re, built on Go's
// stdlib RE2 engine. flags is an inline modifier prefix (e.g. "(?i)",
// or "" when none apply) to fold into the source ahead of matching.
// Callers are expected to only reach here for patterns whose
// MayDelegate bit is still set, a strict subset of RE2 syntax, so the stdlib compile
// below should not normally fail.
func Compile(re *syntax.Regexp, flags string) (Matcher, error) {
	if m := optimizedMatcher(re.Expr, flags); m != nil {
		return m, nil
	}
	return regexp.Compile(flags + re.Source)
}
