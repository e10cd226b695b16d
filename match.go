package regex

import "github.com/onigx/regex/syntax"

// Match is a successful match result. Index 0 is always the whole
// match; numbered groups start
// at 1. Positions are code-point indices into the matched string (see
// DESIGN.md); FullText/GroupAt materialize substrings on demand rather
// than storing them, since most callers only need a handful of the
// groups a pattern defines.
type Match struct {
	input  []rune
	groups *syntax.GroupTable

	start, end int
	caps       []Capture // index 0 is the whole match, 1..N are groups
}

func newMatch(ctx *context, start, end int) *Match {
	caps := append([]Capture(nil), ctx.byNumber...)
	if len(caps) == 0 {
		caps = make([]Capture, 1)
	}
	caps[0] = Capture{Start: start, End: end, Ok: true}
	return &Match{input: ctx.input, groups: ctx.groups, start: start, end: end, caps: caps}
}

// FullText returns the whole match's text.
func (m *Match) FullText() string { return string(m.input[m.start:m.end]) }

// Start returns the whole match's start position.
func (m *Match) Start() int { return m.start }

// End returns the whole match's end position.
func (m *Match) End() int { return m.end }

// Len returns the whole match's length.
func (m *Match) Len() int { return m.end - m.start }

// GroupCount returns the number of capturing groups, excluding group 0.
func (m *Match) GroupCount() int { return len(m.caps) - 1 }

// GroupAt returns group i's text and whether it participated in the
// match. i == 0 is the whole match. A negative or out-of-range i
// (including one past GroupCount) reports ok=false.
func (m *Match) GroupAt(i int) (string, bool) {
	if i < 0 || i >= len(m.caps) {
		return "", false
	}
	cap := m.caps[i]
	if !cap.Ok {
		return "", false
	}
	return string(m.input[cap.Start:cap.End]), true
}

// NamedGroup returns the named group's text and whether it
// participated; ok is false for an unknown name too.
func (m *Match) NamedGroup(name string) (string, bool) {
	num, ok := m.groups.ByName[name]
	if !ok {
		return "", false
	}
	return m.GroupAt(num)
}

// GroupNames returns every named group's name, in group-number order.
func (m *Match) GroupNames() []string {
	names := make([]string, 0, len(m.groups.ByName))
	for n := 1; n < len(m.caps); n++ {
		g := m.groups.ByNumber[n]
		if g != nil && g.GroupName != "" {
			names = append(names, g.GroupName)
		}
	}
	return names
}

// GroupStart returns group i's start position, or -1 if it didn't
// participate or i is out of range.
func (m *Match) GroupStart(i int) int {
	if i < 0 || i >= len(m.caps) || !m.caps[i].Ok {
		return -1
	}
	return m.caps[i].Start
}

// GroupEnd returns group i's end position, or -1 if it didn't
// participate or i is out of range.
func (m *Match) GroupEnd(i int) int {
	if i < 0 || i >= len(m.caps) || !m.caps[i].Ok {
		return -1
	}
	return m.caps[i].End
}

// NamedGroupStart returns the named group's start position, or -1.
func (m *Match) NamedGroupStart(name string) int {
	num, ok := m.groups.ByName[name]
	if !ok {
		return -1
	}
	return m.GroupStart(num)
}

// NamedGroupEnd returns the named group's end position, or -1.
func (m *Match) NamedGroupEnd(name string) int {
	num, ok := m.groups.ByName[name]
	if !ok {
		return -1
	}
	return m.GroupEnd(num)
}

// LastCapturedGroup returns the rightmost (highest-numbered) group
// that participated in the match, or 0 if no numbered group captured.
func (m *Match) LastCapturedGroup() int {
	last := 0
	for n := 1; n < len(m.caps); n++ {
		if m.caps[n].Ok {
			last = n
		}
	}
	return last
}
