package regex

import "github.com/onigx/regex/syntax"

// MaxRecursionDepth bounds subroutine and whole-pattern recursive
// calls: exceeding it fails the calling branch, not the
// whole match.
const MaxRecursionDepth = 100

// Capture is the (start, end) pair of a group's most recent
// assignment, in code-point indices into the match's input (see
// DESIGN.md for why positions are code-point rather than byte
// offsets). Ok is false for a group that has never captured.
type Capture struct {
	Start, End int
	Ok         bool
}

// historyEntry is one append-only record of a capture assignment.
// Nothing in this implementation
// consumes it yet (conditional alternatives, the one feature that
// would read it, are rejected at parse time), but it is kept faithful
// to the data model and available to any future conditional-predicate
// support.
type historyEntry struct {
	Num  int
	Name string
	Cap  Capture
}

type journalEntry struct {
	idx  int
	prev Capture
}

// context is the per-evaluation mutable state for one match attempt:
// current captures by number/name (name
// resolves to number via the immutable group table), an append-only
// history, and a recursion counter. Backtracking restores captures via
// an undo-log journal (Mark/Rollback) rather than copying the whole
// capture table at every branch point.
type context struct {
	input  []rune
	groups *syntax.GroupTable
	root   *syntax.Expr
	opts   Options

	byNumber []Capture
	history  []historyEntry
	journal  []journalEntry
	depth    int
}

func newContext(input []rune, re *syntax.Regexp, opts Options) *context {
	return &context{
		input:    input,
		groups:   re.Groups,
		root:     re.Expr,
		opts:     opts,
		byNumber: make([]Capture, re.Groups.Count()+1),
	}
}

// Mark returns a journal position that Rollback can later restore to.
func (c *context) Mark() int { return len(c.journal) }

// Rollback undoes every capture assignment recorded since mark, in
// LIFO order. Every node that mutates captures is responsible for
// rolling back its own mutation when its continuation fails.
// Constructs that commit to or discard a child's result (atomic
// groups, possessive quantifiers, lookaround, subroutine calls) also
// take a mark before running the child and roll back everything the
// child recorded since then (see exec.go).
func (c *context) Rollback(mark int) {
	for i := len(c.journal) - 1; i >= mark; i-- {
		e := c.journal[i]
		c.byNumber[e.idx] = e.prev
	}
	c.journal = c.journal[:mark]
}

// SetCapture records a capture for group num (and, if name != "", logs
// it under that name too — named groups resolve to numbers, so there
// is only one byNumber slot to update). Out-of-range nums are ignored;
// the parser guarantees GroupNum is always in range for real AST
// nodes, so this only guards against programmer error.
func (c *context) SetCapture(num int, name string, start, end int) {
	if num <= 0 || num >= len(c.byNumber) {
		return
	}
	prev := c.byNumber[num]
	c.journal = append(c.journal, journalEntry{idx: num, prev: prev})
	cap := Capture{Start: start, End: end, Ok: true}
	c.byNumber[num] = cap
	c.history = append(c.history, historyEntry{Num: num, Name: name, Cap: cap})
}

// Capture returns group num's current capture, if any.
func (c *context) Capture(num int) (Capture, bool) {
	if num <= 0 || num >= len(c.byNumber) {
		return Capture{}, false
	}
	cp := c.byNumber[num]
	return cp, cp.Ok
}

// CaptureByName resolves name to a group number via the compiled
// pattern's group table, then returns its current capture.
func (c *context) CaptureByName(name string) (Capture, bool) {
	num, ok := c.groups.ByName[name]
	if !ok {
		return Capture{}, false
	}
	return c.Capture(num)
}

// Text slices cap out of the match input.
func (c *context) Text(cap Capture) string {
	return string(c.input[cap.Start:cap.End])
}
