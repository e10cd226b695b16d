package regex

import "github.com/onigx/regex/syntax"

// cont is the continuation an exec function invokes once for each
// candidate end position its own node reaches, in the order described
// per construct below. Returning true means "the rest of the pattern matched
// too — stop, we're done"; the exec function that receives true from
// its own recursive call propagates it upward without trying further
// alternatives. Returning false means "keep looking", so the caller
// tries its next candidate (a later alternative, fewer/more repeats, a
// different lookbehind start, ...).
//
// This is continuation-style search rather
// than eagerly building a list of every candidate result: at any
// possessive or atomic cut-off, the search below that node simply
// never runs, rather than running and then being discarded.
type cont func(pos int) bool

// exec evaluates node e starting at pos against ctx, trying candidates
// in the order documented per-node below and invoking k for
// each. It returns whatever the winning k call returned, or false if
// no candidate made k return true.
func exec(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	switch e.Op {
	case syntax.OpLiteral:
		return execLiteral(e, ctx, pos, k)
	case syntax.OpCharClass:
		return execCharClass(e, ctx, pos, k)
	case syntax.OpDot:
		return execDot(e, ctx, pos, k)
	case syntax.OpStartAnchor:
		return execStartAnchor(e, ctx, pos, k)
	case syntax.OpEndAnchor:
		return execEndAnchor(e, ctx, pos, k)
	case syntax.OpSeq:
		return execSeq(e.Children, ctx, pos, k)
	case syntax.OpAlt:
		return execAlt(e, ctx, pos, k)
	case syntax.OpQuant:
		return execQuant(e, ctx, pos, k)
	case syntax.OpCapture:
		return execCapture(e, ctx, pos, k)
	case syntax.OpGroup:
		return exec(e.Children[0], ctx, pos, k)
	case syntax.OpAtomic:
		return execAtomic(e, ctx, pos, k)
	case syntax.OpLookaround:
		return execLookaround(e, ctx, pos, k)
	case syntax.OpBackref:
		return execBackref(e, ctx, pos, k)
	case syntax.OpSubroutine:
		return execSubroutine(e, ctx, pos, k)
	default:
		return false
	}
}

func execLiteral(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	lit := []rune(e.Text)
	n := len(lit)
	if pos+n > len(ctx.input) {
		return false
	}
	for i, want := range lit {
		have := ctx.input[pos+i]
		if e.CaseInsensitive {
			if !runeEqualFold(have, want) {
				return false
			}
		} else if have != want {
			return false
		}
	}
	return k(pos + n)
}

func execCharClass(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	if pos >= len(ctx.input) {
		return false
	}
	// Character classes are never case-folded, even under ignore_case.
	if !syntax.CharClassMatches(e, ctx.input[pos], false) {
		return false
	}
	return k(pos + 1)
}

func execDot(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	if pos >= len(ctx.input) {
		return false
	}
	ch := ctx.input[pos]
	if syntax.IsLineSeparator(ch) && !ctx.opts.SingleLine && !e.DotAll {
		return false
	}
	return k(pos + 1)
}

func execStartAnchor(_ *syntax.Expr, ctx *context, pos int, k cont) bool {
	if pos == 0 {
		return k(pos)
	}
	if ctx.opts.Multiline && pos > 0 && syntax.IsLineSeparator(ctx.input[pos-1]) {
		return k(pos)
	}
	return false
}

func execEndAnchor(_ *syntax.Expr, ctx *context, pos int, k cont) bool {
	if pos == len(ctx.input) {
		return k(pos)
	}
	if ctx.opts.Multiline && pos < len(ctx.input) && syntax.IsLineSeparator(ctx.input[pos]) {
		return k(pos)
	}
	return false
}

// execSeq is the depth-first cartesian product over children: each
// child's continuation is "match the rest of the
// sequence", so backtracking into an earlier child happens exactly
// when a later child (or the outer k) fails.
func execSeq(children []*syntax.Expr, ctx *context, pos int, k cont) bool {
	if len(children) == 0 {
		return k(pos)
	}
	head, rest := children[0], children[1:]
	return exec(head, ctx, pos, func(next int) bool {
		return execSeq(rest, ctx, next, k)
	})
}

func execAlt(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	for _, alt := range e.Children {
		if exec(alt, ctx, pos, k) {
			return true
		}
	}
	return false
}

func execQuant(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	switch e.Mode {
	case syntax.Possessive:
		return execQuantPossessive(e, ctx, pos, k)
	case syntax.Lazy:
		return execQuantLazy(e, ctx, pos, 0, k)
	default:
		return execQuantGreedy(e, ctx, pos, 0, k)
	}
}

// execQuantGreedy tries as many repetitions as possible first,
// backtracking to fewer one at a time, enumerating match counts from
// as many as possible down to min. A zero-width
// iteration is accepted at most once (to let a {0,} quantifier still
// satisfy min on an empty-matching child) and is never retried at the
// same position, matching the zero-width iteration guard.
func execQuantGreedy(e *syntax.Expr, ctx *context, pos, count int, k cont) bool {
	child := e.Children[0]
	if e.Max == syntax.Unbounded || count < e.Max {
		ok := exec(child, ctx, pos, func(next int) bool {
			if next == pos {
				if count+1 < e.Min {
					return false
				}
				return k(pos)
			}
			return execQuantGreedy(e, ctx, next, count+1, k)
		})
		if ok {
			return true
		}
	}
	if count >= e.Min {
		return k(pos)
	}
	return false
}

// execQuantLazy tries as few repetitions as possible first, expanding
// one at a time, enumerating from min upward.
func execQuantLazy(e *syntax.Expr, ctx *context, pos, count int, k cont) bool {
	if count >= e.Min {
		if k(pos) {
			return true
		}
	}
	if e.Max != syntax.Unbounded && count >= e.Max {
		return false
	}
	child := e.Children[0]
	return exec(child, ctx, pos, func(next int) bool {
		if next == pos {
			if count+1 < e.Min {
				return false
			}
			return k(pos)
		}
		return execQuantLazy(e, ctx, next, count+1, k)
	})
}

// execQuantPossessive takes the first successful child result at each
// iteration, commits to it, and never backtracks into an iteration
// from the outside. It is implemented as a plain loop,
// not recursion-with-continuation, because there is nothing to
// backtrack into once an iteration is taken.
func execQuantPossessive(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	child := e.Children[0]
	mark := ctx.Mark()
	count := 0
	cur := pos
	for e.Max == syntax.Unbounded || count < e.Max {
		matched := false
		next := cur
		exec(child, ctx, cur, func(n int) bool {
			next, matched = n, true
			return true
		})
		if !matched {
			break
		}
		count++
		if next == cur {
			// Zero-width: counted once, can't iterate further.
			cur = next
			break
		}
		cur = next
	}
	if count < e.Min {
		ctx.Rollback(mark)
		return false
	}
	if k(cur) {
		return true
	}
	ctx.Rollback(mark)
	return false
}

// execCapture records the capture for e's group on every candidate end
// its child reaches, tries k, and rolls back just that one assignment
// if k fails — leaving the child free to offer its next candidate.
func execCapture(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	return exec(e.Children[0], ctx, pos, func(end int) bool {
		mark := ctx.Mark()
		ctx.SetCapture(e.GroupNum, e.GroupName, pos, end)
		if k(end) {
			return true
		}
		ctx.Rollback(mark)
		return false
	})
}

// execAtomic commits to the child's first successful result and
// discards the rest: no backtracking into its interior once taken.
func execAtomic(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	mark := ctx.Mark()
	matched := false
	end := pos
	exec(e.Children[0], ctx, pos, func(n int) bool {
		end, matched = n, true
		return true
	})
	if !matched {
		ctx.Rollback(mark)
		return false
	}
	if k(end) {
		return true
	}
	ctx.Rollback(mark)
	return false
}

// execLookaround implements lookahead directly and delegates
// lookbehind to execLookbehind. Both are zero-width: they yield at
// most one candidate (pos itself) and any captures produced while
// probing the child are discarded before k runs — captures created
// inside a lookaround are never observable outside it.
func execLookaround(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	if e.Behind {
		return execLookbehind(e, ctx, pos, k)
	}
	mark := ctx.Mark()
	matched := exec(e.Children[0], ctx, pos, func(int) bool { return true })
	ctx.Rollback(mark)
	if matched == e.Negated {
		return false
	}
	return k(pos)
}

// execLookbehind scans candidate start positions in
// [pos-max, pos-min], derived from the child's cached length bound,
// looking for any run of the child that lands exactly on pos. The
// bound is capped at syntax.LookbehindCeiling.
func execLookbehind(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	child := e.Children[0]
	minLen, maxLen := syntax.LengthBound(child)
	lo := pos - maxLen
	if lo < 0 {
		lo = 0
	}
	hi := pos - minLen

	mark := ctx.Mark()
	found := false
	for start := lo; start <= hi; start++ {
		m := ctx.Mark()
		exec(child, ctx, start, func(end int) bool {
			if end == pos {
				found = true
				return true
			}
			return false
		})
		ctx.Rollback(m)
		if found {
			break
		}
	}
	ctx.Rollback(mark)

	if found == e.Negated {
		return false
	}
	return k(pos)
}

func execBackref(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	var cap Capture
	var ok bool
	if e.GroupName != "" {
		cap, ok = ctx.CaptureByName(e.GroupName)
	} else {
		cap, ok = ctx.Capture(e.GroupNum)
	}
	if !ok {
		return false
	}
	n := cap.End - cap.Start
	if pos+n > len(ctx.input) {
		return false
	}
	for i := 0; i < n; i++ {
		have := ctx.input[pos+i]
		want := ctx.input[cap.Start+i]
		if e.CaseInsensitive {
			if !runeEqualFold(have, want) {
				return false
			}
		} else if have != want {
			return false
		}
	}
	return k(pos + n)
}

// execSubroutine re-executes a group's body (or, for (?R), the whole
// pattern) without adopting captures it produces into the caller's
// scope: every capture the callee assigns is rolled back to the mark
// taken before the call,
// each time the callee reaches a candidate end position, before k
// (the rest of the pattern outside the call) ever runs.
func execSubroutine(e *syntax.Expr, ctx *context, pos int, k cont) bool {
	var body *syntax.Expr
	switch {
	case e.Recursive:
		body = ctx.root
	case e.GroupName != "":
		num, ok := ctx.groups.ByName[e.GroupName]
		if !ok {
			return false
		}
		target := ctx.groups.ByNumber[num]
		if target == nil {
			return false
		}
		body = target.Children[0]
	default:
		if e.GroupNum < 1 || e.GroupNum >= len(ctx.groups.ByNumber) {
			return false
		}
		target := ctx.groups.ByNumber[e.GroupNum]
		if target == nil {
			return false
		}
		body = target.Children[0]
	}

	if ctx.depth >= MaxRecursionDepth {
		return false
	}
	ctx.depth++
	mark := ctx.Mark()
	ok := exec(body, ctx, pos, func(end int) bool {
		ctx.Rollback(mark)
		return k(end)
	})
	if !ok {
		ctx.Rollback(mark)
	}
	ctx.depth--
	return ok
}

// runeEqualFold compares two runes under the engine's ASCII-only
// lower-case folding.
func runeEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	return asciiLower(a) == asciiLower(b)
}

func asciiLower(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
