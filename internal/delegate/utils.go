package delegate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/onigx/regex/syntax"
)

// reversedHeadSource renders e as RE2 source text matching the reverse
// of whatever e matches. It returns ok=false for any construct outside
// the MayDelegate subset (literals, character classes without Perl
// shorthand members, `.`, greedy quantifiers, alternation, capturing
// and non-capturing groups) — callers fall back to the unoptimized
// path rather than risk an incorrect rendering.
func reversedHeadSource(e *syntax.Expr) (string, bool) {
	var sb strings.Builder
	if !writeReversed(&sb, e) {
		return "", false
	}
	return sb.String(), true
}

func writeReversed(sb *strings.Builder, e *syntax.Expr) bool {
	switch e.Op {
	case syntax.OpLiteral:
		runes := []rune(e.Text)
		rev := make([]rune, len(runes))
		for i, r := range runes {
			rev[len(runes)-1-i] = r
		}
		sb.WriteString(regexp.QuoteMeta(string(rev)))
		return true
	case syntax.OpCharClass:
		return writeCharClass(sb, e)
	case syntax.OpDot:
		if e.DotAll {
			sb.WriteString("(?s:.)")
		} else {
			sb.WriteString(".")
		}
		return true
	case syntax.OpSeq:
		for i := len(e.Children) - 1; i >= 0; i-- {
			if !writeReversed(sb, e.Children[i]) {
				return false
			}
		}
		return true
	case syntax.OpAlt:
		sb.WriteString("(?:")
		for i, c := range e.Children {
			if i > 0 {
				sb.WriteString("|")
			}
			if !writeReversed(sb, c) {
				return false
			}
		}
		sb.WriteString(")")
		return true
	case syntax.OpQuant:
		sb.WriteString("(?:")
		if !writeReversed(sb, e.Children[0]) {
			return false
		}
		sb.WriteString(")")
		sb.WriteString(quantSuffix(e))
		return true
	case syntax.OpCapture, syntax.OpGroup:
		sb.WriteString("(?:")
		if !writeReversed(sb, e.Children[0]) {
			return false
		}
		sb.WriteString(")")
		return true
	default:
		// Anchors are declined, so a head containing one falls back
		// to compiling the whole source. Lookaround, atomic groups,
		// backreferences and subroutines never reach here:
		// MayDelegate is cleared whenever the parser sees one.
		return false
	}
}

func quantSuffix(e *syntax.Expr) string {
	switch {
	case e.Min == 0 && e.Max == syntax.Unbounded:
		return "*"
	case e.Min == 1 && e.Max == syntax.Unbounded:
		return "+"
	case e.Min == 0 && e.Max == 1:
		return "?"
	case e.Max == syntax.Unbounded:
		return fmt.Sprintf("{%d,}", e.Min)
	case e.Min == e.Max:
		return fmt.Sprintf("{%d}", e.Min)
	default:
		return fmt.Sprintf("{%d,%d}", e.Min, e.Max)
	}
}

// writeCharClass renders a plain range-only character class verbatim —
// reversing a class has no effect on what it matches. It declines
// classes with an embedded Perl shorthand member (`[\dA-F]`), since a
// negated shorthand like `\D` can't be flattened into an equivalent
// list of ranges without enumerating the whole rune space.
func writeCharClass(sb *strings.Builder, e *syntax.Expr) bool {
	for _, it := range e.Items {
		if it.IsShort {
			return false
		}
	}
	sb.WriteString("[")
	if e.Negated {
		sb.WriteString("^")
	}
	for _, it := range e.Items {
		sb.WriteString(escapeClassRune(it.Range.Lo))
		if it.Range.Hi != it.Range.Lo {
			sb.WriteString("-")
			sb.WriteString(escapeClassRune(it.Range.Hi))
		}
	}
	sb.WriteString("]")
	return true
}

func escapeClassRune(r rune) string {
	switch r {
	case ']', '\\', '^', '-':
		return `\` + string(r)
	default:
		return string(r)
	}
}
