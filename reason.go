package monosat

import "github.com/go-air/gini/z"

// BuildReason is what the host calls (via the Marker it got back from
// NewReasonMarker, passed to Enqueue) whenever it needs an explanation
// clause for p, which is
// always of the form (reason[0] ∨ reason[1] ∨ ... ) with p ==
// reason[0] and every other literal false under the current
// assignment. It first rewinds the trail past any assignment made
// after p (buildReason can be called lazily, long after p's
// propagation), then dispatches to buildValueReason (constant
// threshold) or buildValueReasonBV (BV-to-BV). Both take the operator
// as a parameter: there is one builder per comparison kind, not one
// per operator.
func (c *Core[W]) BuildReason(p z.Lit, marker Marker) []z.Lit {
	c.BacktrackUntilLit(p)

	reason := []z.Lit{p}
	v := p.Var()
	lv := &c.localVars[c.localIndex(v)]
	if lv.kind != roleComparison {
		return reason
	}

	bv := lv.bv
	c.updateApproximations(bv)
	cmp := &c.comparisons[lv.cmp]
	op := cmp.op
	if p.Sign() < 0 {
		op = op.Negate()
	}
	if !cmp.isBVCompare() {
		c.buildValueReason(op, bv, lv.cmp, &reason)
	} else {
		c.buildValueReasonBV(op, bv, cmp.other, lv.cmp, &reason)
	}
	return reason
}

// compareHolds reports whether approx op to (op applied as "over
// op to"/"under op to" per the compareOver convention used
// throughout this file and propagate.go).
func compareHolds[W Weight[W]](op Op, approx, to W) bool {
	switch op {
	case Lt:
		return approx.Less(to)
	case Leq:
		return approx.LessEq(to)
	case Gt:
		return to.Less(approx)
	default: // Geq
		return to.LessEq(approx)
	}
}

// buildValueReason appends the literals explaining why bv's interval
// forces comparison cmpID to hold under op: first try to blame it on
// bv's own bit assignments (skipping any bit whose
// flip would not have changed the outcome), and only if the bits alone
// don't already force it, fall back to scanning bv's other constant
// comparisons for one whose own tightening was load-bearing.
func (c *Core[W]) buildValueReason(op Op, bv, comparisonID int, reason *[]z.Lit) {
	cmp := &c.comparisons[comparisonID]
	to := cmp.w
	compareOver := op == Lt || op == Leq

	bits := c.bvs[bv].bits
	under, over := c.zero, c.zero
	for i, bl := range bits {
		switch c.host.Value(bl) {
		case True:
			pow := c.bw.at(i)
			under = under.Add(pow)
			over = over.Add(pow)
		case False:
		default:
			over = over.Add(c.bw.at(i))
		}
	}

	if compareOver && compareHolds(op, over, to) {
		for i, bl := range bits {
			if c.host.Value(bl) == False {
				bit := c.bw.at(i)
				candidate := over.Add(bit)
				if compareHolds(op, candidate, to) && c.host.Level(bl.Var()) > 0 {
					over = candidate
				} else {
					*reason = append(*reason, bl)
				}
			}
		}
		return
	} else if !compareOver && compareHolds(op, under, to) {
		for i, bl := range bits {
			if c.host.Value(bl) == True {
				bit := c.bw.at(i)
				candidate := under.Sub(bit)
				if compareHolds(op, candidate, to) && c.host.Level(bl.Var()) > 0 {
					under = candidate
				} else {
					*reason = append(*reason, bl.Not())
				}
			}
		}
		return
	}

	for _, cID := range c.bvs[bv].compares {
		if cID == comparisonID {
			continue
		}
		other := &c.comparisons[cID]
		val := c.host.Value(other.lit)
		switch other.op {
		case Lt:
			if val == True && to.LessEq(over) {
				over = other.w.Sub(c.one)
			} else if val == False && under.Less(other.w) {
				under = other.w
			}
		case Leq:
			if val == True && other.w.Less(over) {
				over = other.w
			} else if val == False && under.LessEq(other.w) {
				under = other.w.Add(c.one)
			}
		case Gt:
			if val == True && under.LessEq(other.w) {
				under = other.w.Add(c.one)
			} else if val == False && other.w.Less(over) {
				over = other.w
			}
		default:
			if val == True && under.Less(other.w) {
				under = other.w
			} else if val == False && other.w.LessEq(over) {
				over = other.w.Sub(c.one)
			}
		}
		holds := compareHolds(op, over, to)
		if !compareOver {
			holds = compareHolds(op, under, to)
		}
		if holds {
			if val == True {
				*reason = append(*reason, other.lit.Not())
			} else {
				*reason = append(*reason, other.lit)
			}
			return
		}
	}
}

// buildValueReasonBV reduces a BV-to-BV comparison reason to one or
// two absolute reasons. If both sides are
// constants no explanation is needed (the clause is a host-level
// tautology given their fixed values). If exactly one side is
// constant, the reason collapses to a single constant-threshold
// reason against the other side's matching bound. Otherwise a
// midpoint value mid is chosen between over[bv] and under[other] (or
// between over[other] and under[bv] for the ≥/> cases), using ceiling
// division for the < / ≤ cases and floor division for ≥ / >, so that
// over[bv] < mid ≤ under[other] for <, over[bv] ≤ mid ≤ under[other]
// for ≤, over[other] ≤ mid < under[bv] for >, and over[other] ≤ mid ≤
// under[bv] for ≥. The two constant comparisons (bv op mid, and other
// ≥ mid or ≤ mid) are created if missing and explained independently.
func (c *Core[W]) buildValueReasonBV(op Op, bv, other, comparisonID int, reason *[]z.Lit) {
	switch {
	case c.bvs[bv].isConst && c.bvs[other].isConst:
		return
	case c.bvs[other].isConst:
		w := c.bvs[other].under
		cmpID := c.ensureConstComparison(op, bv, w)
		c.buildValueReason(op, bv, cmpID, reason)
	case c.bvs[bv].isConst:
		w := c.bvs[bv].over
		flipped := op.Flip()
		cmpID := c.ensureConstComparison(flipped, other, w)
		c.buildValueReason(flipped, other, cmpID, reason)
	default:
		overBV, underBV := c.bvs[bv].over, c.bvs[bv].under
		overOther, underOther := c.bvs[other].over, c.bvs[other].under

		var mid W
		var bvOp, otherOp Op
		switch op {
		case Lt, Leq:
			span := underOther.Sub(overBV)
			half, ok := span.CeilDiv(c.two())
			if !ok {
				panicUnsupported("CeilDiv")
			}
			mid = half.Add(overBV)
			bvOp, otherOp = op, Geq
		default: // Geq, Gt
			span := underBV.Sub(overOther)
			half, ok := span.FloorDiv(c.two())
			if !ok {
				panicUnsupported("FloorDiv")
			}
			mid = half.Add(overOther)
			bvOp, otherOp = op, Leq
		}

		cID1 := c.ensureConstComparison(bvOp, bv, mid)
		c.buildValueReason(bvOp, bv, cID1, reason)
		cID2 := c.ensureConstComparison(otherOp, other, mid)
		c.buildValueReason(otherOp, other, cID2, reason)
	}
}

// two returns the Weight value 2 for this instantiation, derived from
// one+one so no instantiation needs to expose an explicit literal.
func (c *Core[W]) two() W { return c.one.Add(c.one) }

// ensureConstComparison returns the comparison id for bv op w,
// creating it (with no outer host variable) if it does not already
// exist. Used only internally by reason construction, where the
// midpoint split may need a comparison literal that was never
// requested by the host.
func (c *Core[W]) ensureConstComparison(op Op, bv int, w W) int {
	if existing := c.findConstComparison(bv, op, w); existing >= 0 {
		return existing
	}
	c.NewComparison(op, bv, w, nil)
	return c.findConstComparison(bv, op, w)
}
