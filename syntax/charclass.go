package syntax

// Character predicates and class builders. The engine reasons about
// code points but defines the Perl shorthand classes over plain ASCII,
// matching Oniguruma's byte-host defaults (see SPEC_FULL.md Open
// Questions): `\d` = `[0-9]`, `\s` = `[ \t\n\v\f\r]`, `\w` =
// `[A-Za-z0-9_]`.

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isWordChar(ch rune) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

var digitRanges = []RuneRange{{'0', '9'}}

var spaceRanges = []RuneRange{
	{' ', ' '}, {'\t', '\t'}, {'\n', '\n'}, {'\v', '\v'}, {'\f', '\f'}, {'\r', '\r'},
}

var wordRanges = []RuneRange{
	{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'},
}

// classForEscape returns the range set and negation for a Perl
// shorthand class escape (d, D, s, S, w, W), and ok=false if ch isn't
// one of those six letters.
func classForEscape(ch byte) (ranges []RuneRange, negated, ok bool) {
	switch ch {
	case 'd':
		return digitRanges, false, true
	case 'D':
		return digitRanges, true, true
	case 's':
		return spaceRanges, false, true
	case 'S':
		return spaceRanges, true, true
	case 'w':
		return wordRanges, false, true
	case 'W':
		return wordRanges, true, true
	default:
		return nil, false, false
	}
}

// matchesClass reports whether ch belongs to the class described by
// ranges/negated, applying ASCII-only case folding when foldCase is
// set (classes are not folded automatically per spec; callers pass
// foldCase only where the caller has decided to fold).
func matchesClass(ranges []RuneRange, negated bool, ch rune, foldCase bool) bool {
	in := false
	for _, r := range ranges {
		if r.Contains(ch) {
			in = true
			break
		}
		if foldCase {
			if folded, ok := asciiFold(ch); ok && r.Contains(folded) {
				in = true
				break
			}
		}
	}
	if negated {
		return !in
	}
	return in
}

// asciiFold returns the opposite-case ASCII letter for ch, if any.
func asciiFold(ch rune) (rune, bool) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return ch - ('a' - 'A'), true
	case ch >= 'A' && ch <= 'Z':
		return ch + ('a' - 'A'), true
	default:
		return 0, false
	}
}

func isLineSeparator(ch rune) bool {
	return ch == '\n'
}

// IsLineSeparator reports whether ch ends a line for the purposes of
// multiline anchors and dot-all.
func IsLineSeparator(ch rune) bool {
	return isLineSeparator(ch)
}

// CharClassMatches reports whether ch belongs to the class node e
// describes (e.Op must be OpCharClass). Classes are not
// case-folded automatically; pass foldCase only if ignore_case should
// apply to this class's literal ranges (it never applies to embedded
// shorthand escapes, which are ASCII-fixed already).
func CharClassMatches(e *Expr, ch rune, foldCase bool) bool {
	in := false
	for _, it := range e.Items {
		if it.IsShort {
			if it.matches(ch) {
				in = true
				break
			}
			continue
		}
		if it.Range.Contains(ch) {
			in = true
			break
		}
		if foldCase {
			if folded, ok := asciiFold(ch); ok && it.Range.Contains(folded) {
				in = true
				break
			}
		}
	}
	if e.Negated {
		return !in
	}
	return in
}
