// Package oracle wraps github.com/dlclark/regexp2 as a second,
// independent regex implementation used only by this module's test
// suite. It never backs a production match: its purpose is to let
// property-style tests cross-check this engine's output against a
// separately-implemented PCRE-flavoured matcher on the patterns where
// their semantics should agree (no possessive-quantifier, subroutine
// or whole-pattern-recursion syntax, which regexp2 does not accept;
// lookaround and atomic groups are shared by both).
package oracle

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Oracle is a compiled regexp2 pattern plus the translated options
// that produced it.
type Oracle struct {
	re *regexp2.Regexp
}

// Compile translates pattern into a regexp2.Regexp under the given
// flags. ignoreCase/multiline/singleLine mirror this module's own
// Options so a test can compile the same pattern both ways.
func Compile(pattern string, ignoreCase, multiline, singleLine bool) (*Oracle, error) {
	opts := regexp2.None
	if ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	if multiline {
		opts |= regexp2.Multiline
	}
	if singleLine {
		opts |= regexp2.Singleline
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("oracle: compiling %q: %w", pattern, err)
	}
	return &Oracle{re: re}, nil
}

// HasMatch reports whether input contains a match anywhere.
func (o *Oracle) HasMatch(input string) (bool, error) {
	m, err := o.re.FindStringMatch(input)
	if err != nil {
		return false, fmt.Errorf("oracle: matching %q: %w", input, err)
	}
	return m != nil, nil
}

// FirstMatch returns the first match's (start, end) byte offsets and
// its full text, or ok=false if there is none.
func (o *Oracle) FirstMatch(input string) (start, end int, text string, ok bool, err error) {
	m, err := o.re.FindStringMatch(input)
	if err != nil {
		return 0, 0, "", false, fmt.Errorf("oracle: matching %q: %w", input, err)
	}
	if m == nil {
		return 0, 0, "", false, nil
	}
	return m.Index, m.Index + m.Length, m.String(), true, nil
}

// AllStringMatches returns the full text of every non-overlapping
// match, in order.
func (o *Oracle) AllStringMatches(input string) ([]string, error) {
	var out []string
	m, err := o.re.FindStringMatch(input)
	for m != nil {
		if err != nil {
			return nil, fmt.Errorf("oracle: matching %q: %w", input, err)
		}
		out = append(out, m.String())
		m, err = o.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("oracle: matching %q: %w", input, err)
	}
	return out, nil
}
