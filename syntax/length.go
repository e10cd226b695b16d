package syntax

// AnalyzeLength computes, and caches on every node, the minimum and
// maximum number of input units a subtree can consume. It runs once
// after parsing and backs the variable-length lookbehind executor,
// which needs to know how far back to scan.
//
// Subroutine and recursive calls are not followed: a truly recursive
// pattern has unbounded length by construction, and following the
// call graph here could not terminate for genuinely recursive
// grammars, so those nodes report (0, LookbehindCeiling) without
// descending into the callee. This is a conservative widening, not a
// precise bound; it only ever makes a lookbehind scan further back
// than strictly necessary, never less.
func AnalyzeLength(re *Regexp) {
	analyze(re.Expr)
}

func analyze(e *Expr) lengthBound {
	if e.bound.valid {
		return e.bound
	}
	// Mark in-progress before recursing so that a node reachable from
	// itself only through Children (never happens in this grammar,
	// but keeps the function total) can't loop forever.
	e.bound = lengthBound{Min: 0, Max: LookbehindCeiling, valid: true}

	var b lengthBound
	switch e.Op {
	case OpLiteral:
		n := len([]rune(e.Text))
		b = lengthBound{Min: n, Max: n, valid: true}
	case OpCharClass, OpDot:
		b = lengthBound{Min: 1, Max: 1, valid: true}
	case OpStartAnchor, OpEndAnchor:
		b = lengthBound{Min: 0, Max: 0, valid: true}
	case OpLookaround:
		// Zero-width itself, but the child's bound is what a lookbehind
		// scans with, so it is computed and cached here too.
		analyze(e.Children[0])
		b = lengthBound{Min: 0, Max: 0, valid: true}
	case OpBackref:
		// Length depends on what was captured at match time; treat as
		// variable within a conservative window.
		b = lengthBound{Min: 0, Max: LookbehindCeiling, valid: true}
	case OpSubroutine:
		b = lengthBound{Min: 0, Max: LookbehindCeiling, valid: true}
	case OpSeq:
		min, max := 0, 0
		for _, c := range e.Children {
			cb := analyze(c)
			min += cb.Min
			max = saturatingAdd(max, cb.Max)
		}
		b = lengthBound{Min: min, Max: cap100(max), valid: true}
	case OpAlt:
		if len(e.Children) == 0 {
			b = lengthBound{Min: 0, Max: 0, valid: true}
			break
		}
		first := analyze(e.Children[0])
		min, max := first.Min, first.Max
		for _, c := range e.Children[1:] {
			cb := analyze(c)
			if cb.Min < min {
				min = cb.Min
			}
			if cb.Max > max {
				max = cb.Max
			}
		}
		b = lengthBound{Min: min, Max: cap100(max), valid: true}
	case OpQuant:
		cb := analyze(e.Children[0])
		min := cb.Min * e.Min
		var max int
		if e.Max == Unbounded {
			max = LookbehindCeiling
		} else {
			max = saturatingMul(cb.Max, e.Max)
		}
		b = lengthBound{Min: min, Max: cap100(max), valid: true}
	case OpCapture, OpGroup, OpAtomic:
		b = analyze(e.Children[0])
	default:
		b = lengthBound{Min: 0, Max: 0, valid: true}
	}
	e.bound = b
	return b
}

func cap100(n int) int {
	if n > LookbehindCeiling {
		return LookbehindCeiling
	}
	return n
}

func saturatingAdd(a, b int) int {
	sum := a + b
	if sum > LookbehindCeiling || sum < 0 {
		return LookbehindCeiling
	}
	return sum
}

func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	product := a * b
	if product > LookbehindCeiling || product < 0 {
		return LookbehindCeiling
	}
	return product
}

// LengthBound returns the cached (min, max) length bound for e. Call
// AnalyzeLength on the owning Regexp first.
func LengthBound(e *Expr) (min, max int) {
	return e.bound.Min, e.bound.Max
}
