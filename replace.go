package regex

import (
	"strconv"
	"strings"
)

// ReplaceAll expands template against every non-overlapping match in
// input. Building the output by walking matches in
// original-input order from a fresh buffer gets the same result as
// applying replacements right-to-left against a mutable copy — no
// earlier replacement's length change can perturb a later match's
// recorded position, since all positions were recorded against the
// untouched input up front.
func (re *Regexp) ReplaceAll(input, template string) string {
	matches := re.AllMatches(input, 0)
	if len(matches) == 0 {
		return input
	}
	return expandMatches(input, matches, template)
}

// ReplaceFirst expands template against only the first match.
func (re *Regexp) ReplaceFirst(input, template string) string {
	m := re.FirstMatch(input, 0)
	if m == nil {
		return input
	}
	return expandMatches(input, []*Match{m}, template)
}

func expandMatches(input string, matches []*Match, template string) string {
	runes := []rune(input)
	var sb strings.Builder
	prev := 0
	for _, m := range matches {
		sb.WriteString(string(runes[prev:m.start]))
		sb.WriteString(expandTemplate(m, template))
		prev = m.end
	}
	sb.WriteString(string(runes[prev:]))
	return sb.String()
}

// expandTemplate expands a substitution template against a single
// completed match: $& and $0 are the full match, $N a numbered group,
// ${name} a named group, $$ a literal $. Missing groups expand to
// empty; template expansion never fails.
func expandTemplate(m *Match, template string) string {
	var sb strings.Builder
	rs := []rune(template)
	for i := 0; i < len(rs); i++ {
		ch := rs[i]
		if ch != '$' || i == len(rs)-1 {
			sb.WriteRune(ch)
			continue
		}
		next := rs[i+1]
		switch {
		case next == '$':
			sb.WriteByte('$')
			i++
		case next == '&':
			sb.WriteString(m.FullText())
			i++
		case next == '{':
			end := i + 2
			for end < len(rs) && rs[end] != '}' {
				end++
			}
			if end >= len(rs) {
				sb.WriteRune(ch)
				continue
			}
			name := string(rs[i+2 : end])
			if text, ok := m.NamedGroup(name); ok {
				sb.WriteString(text)
			}
			i = end
		case isASCIIDigit(next):
			j := i + 1
			for j < len(rs) && isASCIIDigit(rs[j]) {
				j++
			}
			n, _ := strconv.Atoi(string(rs[i+1 : j]))
			if text, ok := m.GroupAt(n); ok {
				sb.WriteString(text)
			}
			i = j - 1
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func isASCIIDigit(ch rune) bool { return ch >= '0' && ch <= '9' }
