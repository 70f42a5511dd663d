package monosat

import "github.com/go-air/gini/z"

// Op is one of the four linear-order predicates a comparison literal
// can stand for.
type Op int8

const (
	Lt Op = iota
	Leq
	Gt
	Geq
)

func (op Op) String() string {
	switch op {
	case Lt:
		return "<"
	case Leq:
		return "<="
	case Gt:
		return ">"
	default:
		return ">="
	}
}

// Flip returns ~op: the operator that holds when the two sides of the
// comparison are swapped (a op b  <=>  b Flip(op) a).
func (op Op) Flip() Op {
	switch op {
	case Lt:
		return Gt
	case Leq:
		return Geq
	case Gt:
		return Lt
	default:
		return Leq
	}
}

// Negate returns -op, De Morgan's negation: a op b is false
// precisely when a Negate(op) b is true.
func (op Op) Negate() Op {
	switch op {
	case Lt:
		return Geq
	case Leq:
		return Gt
	case Gt:
		return Leq
	default:
		return Lt
	}
}

// comparison is the record of a single comparison literal: either
// `bv op w` (other == -1, w meaningful) or `bv op otherBV` (other >= 0,
// w unused).
type comparison[W Weight[W]] struct {
	bv    int
	other int // -1 for a constant-threshold comparison
	w     W
	op    Op
	lit   z.Lit
}

func (c *comparison[W]) isBVCompare() bool { return c.other >= 0 }

// weightEqual reports a == b using only the Less capability, so W
// need not be `comparable`.
func weightEqual[W Weight[W]](a, b W) bool {
	return !a.Less(b) && !b.Less(a)
}

// findConstComparison returns the comparison id (an index into
// Core.comparisons, not into compares[bv]) that already represents
// bv op w, or -1.
func (c *Core[W]) findConstComparison(bv int, op Op, w W) int {
	idxs := c.bvs[bv].compares
	// compares is sorted ascending by weight; narrow to the
	// contiguous run of equal weights, then scan for op (at most 4
	// entries, one per operator, since a (bv,op,w) triple is unique).
	lo, hi := 0, len(idxs)
	for lo < hi {
		mid := (lo + hi) / 2
		if c.comparisons[idxs[mid]].w.Less(w) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	for i := lo; i < len(idxs); i++ {
		cmp := &c.comparisons[idxs[i]]
		if cmp.w.Less(w) || w.Less(cmp.w) {
			break
		}
		if cmp.op == op {
			return idxs[i]
		}
	}
	return -1
}

// findBVComparison returns the comparison id representing bv op
// other, or -1. Callers must already have canonicalised bv < other.
func (c *Core[W]) findBVComparison(bv int, op Op, other int) int {
	idxs := c.bvs[bv].bvCompares
	lo, hi := 0, len(idxs)
	for lo < hi {
		mid := (lo + hi) / 2
		if c.comparisons[idxs[mid]].other < other {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	for i := lo; i < len(idxs); i++ {
		cmp := &c.comparisons[idxs[i]]
		if cmp.other != other {
			break
		}
		if cmp.op == op {
			return idxs[i]
		}
	}
	return -1
}

// NewComparison builds a comparison between bitvector bv and the
// constant threshold w. If an
// equivalent record already exists its literal is returned (and, if
// outerVar is supplied, equivalence clauses are added). Otherwise a
// fresh theory variable is allocated, the record is inserted into
// compares[bv] in ascending-w order, and it is eagerly set if the
// current interval already decides it.
func (c *Core[W]) NewComparison(op Op, bv int, w W, outerVar *z.Var) z.Lit {
	if bv < 0 || bv >= len(c.bvs) {
		panicRedefinition(bv)
	}
	if existing := c.findConstComparison(bv, op, w); existing >= 0 {
		lit := c.comparisons[existing].lit
		if outerVar != nil {
			c.equateWithOuter(*outerVar, lit)
		}
		return lit
	}

	cmpID := len(c.comparisons)
	lv := c.newLocalVar(outerVar)
	lit := lv.Pos()
	c.localVars[lv.Var()].kind = roleComparison
	c.localVars[lv.Var()].bv = bv
	c.localVars[lv.Var()].cmp = cmpID

	c.comparisons = append(c.comparisons, comparison[W]{bv: bv, other: -1, w: w, op: op, lit: lit})
	c.insertConstIndex(bv, cmpID)
	c.markDirty(bv)

	c.updateApproximations(bv)
	c.eagerSetConst(bv, cmpID)
	return lit
}

// NewComparisonBV builds a comparison between two bitvectors. Requests
// with bv > other are canonicalised to
// ¬NewComparisonBV(Flip(op), other, bv, outerVar), so the same pair
// never gets two independent literals.
func (c *Core[W]) NewComparisonBV(op Op, bv, other int, outerVar *z.Var) z.Lit {
	if bv < 0 || bv >= len(c.bvs) || other < 0 || other >= len(c.bvs) {
		panicRedefinition(bv)
	}
	if bv > other {
		return c.NewComparisonBV(op.Flip(), other, bv, outerVar).Not()
	}

	if existing := c.findBVComparison(bv, op, other); existing >= 0 {
		lit := c.comparisons[existing].lit
		if outerVar != nil {
			c.equateWithOuter(*outerVar, lit)
		}
		return lit
	}

	cmpID := len(c.comparisons)
	lv := c.newLocalVar(outerVar)
	lit := lv.Pos()
	c.localVars[lv.Var()].kind = roleComparison
	c.localVars[lv.Var()].bv = bv
	c.localVars[lv.Var()].cmp = cmpID

	c.comparisons = append(c.comparisons, comparison[W]{bv: bv, other: other, op: op, lit: lit})
	c.insertBVIndex(bv, cmpID)
	c.markDirty(bv)
	c.markDirty(other)

	c.updateApproximations(bv)
	c.updateApproximations(other)
	c.eagerSetBV(bv, cmpID)
	return lit
}

func (c *Core[W]) insertConstIndex(bv, cmpID int) {
	idxs := c.bvs[bv].compares
	w := c.comparisons[cmpID].w
	pos := len(idxs)
	for i, id := range idxs {
		if w.Less(c.comparisons[id].w) {
			pos = i
			break
		}
	}
	idxs = append(idxs, 0)
	copy(idxs[pos+1:], idxs[pos:])
	idxs[pos] = cmpID
	c.bvs[bv].compares = idxs
}

func (c *Core[W]) insertBVIndex(bv, cmpID int) {
	idxs := c.bvs[bv].bvCompares
	other := c.comparisons[cmpID].other
	pos := len(idxs)
	for i, id := range idxs {
		if other < c.comparisons[id].other {
			pos = i
			break
		}
	}
	idxs = append(idxs, 0)
	copy(idxs[pos+1:], idxs[pos:])
	idxs[pos] = cmpID
	c.bvs[bv].bvCompares = idxs
}

// equateWithOuter adds the host-level equivalence clauses
// (¬outer ∨ ℓ) ∧ (outer ∨ ¬ℓ), so an existing host variable can stand
// in for a comparison literal without gaining a second identity.
func (c *Core[W]) equateWithOuter(outerVar z.Var, lit z.Lit) {
	outer := outerVar.Pos()
	c.host.AddClauseSafely([]z.Lit{outer.Not(), lit})
	c.host.AddClauseSafely([]z.Lit{outer, lit.Not()})
}

// eagerSetConst sets cmpID's literal immediately if the bitvector's
// current interval already decides it, using enqueueEager so the host
// observes both the literal and a reason in the same step.
func (c *Core[W]) eagerSetConst(bv, cmpID int) {
	cmp := &c.comparisons[cmpID]
	under, over := c.bvs[bv].under, c.bvs[bv].over
	switch cmp.op {
	case Lt:
		if over.Less(cmp.w) {
			c.enqueueEager(cmp.lit)
		}
		if cmp.w.LessEq(under) {
			c.enqueueEager(cmp.lit.Not())
		}
	case Leq:
		if over.LessEq(cmp.w) {
			c.enqueueEager(cmp.lit)
		}
		if cmp.w.Less(under) {
			c.enqueueEager(cmp.lit.Not())
		}
	case Gt:
		if over.LessEq(cmp.w) {
			c.enqueueEager(cmp.lit.Not())
		}
		if cmp.w.Less(under) {
			c.enqueueEager(cmp.lit)
		}
	default: // Geq
		if over.Less(cmp.w) {
			c.enqueueEager(cmp.lit.Not())
		}
		if cmp.w.LessEq(under) {
			c.enqueueEager(cmp.lit)
		}
	}
}

// eagerSetBV is eagerSetConst's BV-to-BV analogue, comparing
// over[bv] vs under[other] and under[bv] vs over[other].
func (c *Core[W]) eagerSetBV(bv, cmpID int) {
	cmp := &c.comparisons[cmpID]
	other := cmp.other
	overBV, underBV := c.bvs[bv].over, c.bvs[bv].under
	overOther, underOther := c.bvs[other].over, c.bvs[other].under
	switch cmp.op {
	case Lt:
		if overBV.Less(underOther) {
			c.enqueueEager(cmp.lit)
		}
		if overOther.LessEq(underBV) {
			c.enqueueEager(cmp.lit.Not())
		}
	case Leq:
		if overBV.LessEq(underOther) {
			c.enqueueEager(cmp.lit)
		}
		if overOther.Less(underBV) {
			c.enqueueEager(cmp.lit.Not())
		}
	case Gt:
		if overBV.LessEq(underOther) {
			c.enqueueEager(cmp.lit.Not())
		}
		if overOther.Less(underBV) {
			c.enqueueEager(cmp.lit)
		}
	default: // Geq
		if overBV.Less(underOther) {
			c.enqueueEager(cmp.lit.Not())
		}
		if overOther.LessEq(underBV) {
			c.enqueueEager(cmp.lit)
		}
	}
}
