package monosat

import "github.com/go-air/gini/z"

// Propagate refreshes every bitvector's interval, then walks each
// bitvector's
// constant and BV-to-BV comparison catalogues looking for literals
// the new interval already decides. A comparison already holding true
// with its literal false (or vice versa) is a conflict: Propagate
// returns immediately with the conflicting clause. Otherwise every
// newly decided literal is handed to the host via Enqueue, and once a
// bitvector's catalogues are exhausted its subscribed sub-theory (if
// any) is notified last, so it only ever sees an up-to-date interval.
//
// A nil conflict with ok == true means the pass completed with no
// contradiction; ok == false means conflict is a valid host-ready
// clause (first literal is what would need to flip) and the caller
// must report it upward without calling Propagate again until the
// solver has backtracked.
func (c *Core[W]) Propagate() (conflict []z.Lit, ok bool) {
	if !c.requiresPropagation {
		return nil, true
	}

	dirty := append([]int(nil), c.dirtyQueue...)

	for bv := range c.bvs {
		c.updateApproximations(bv)
		b := &c.bvs[bv]
		over, under := b.over, b.under

		for _, cID := range b.compares {
			cmp := &c.comparisons[cID]
			if holdsUpper(cmp.op, over, cmp.w) {
				switch c.host.Value(cmp.lit) {
				case True:
				case False:
					conflict = []z.Lit{cmp.lit}
					c.buildValueReason(cmp.op, bv, cID, &conflict)
					c.traceConflict(dirty, bv, cID, cmp.lit)
					return conflict, false
				default:
					c.logAndEnqueue(bv, cID, cmp.lit)
				}
			} else if holdsUpperNeg(cmp.op, over, cmp.w) {
				switch c.host.Value(cmp.lit) {
				case True:
					conflict = []z.Lit{cmp.lit.Not()}
					c.buildValueReason(cmp.op.Negate(), bv, cID, &conflict)
					c.traceConflict(dirty, bv, cID, cmp.lit.Not())
					return conflict, false
				case False:
				default:
					c.logAndEnqueue(bv, cID, cmp.lit.Not())
				}
			}
		}

		for i := len(b.compares) - 1; i >= 0; i-- {
			cID := b.compares[i]
			cmp := &c.comparisons[cID]
			if holdsLowerNeg(cmp.op, under, cmp.w) {
				switch c.host.Value(cmp.lit) {
				case True:
					conflict = []z.Lit{cmp.lit.Not()}
					c.buildValueReason(cmp.op.Negate(), bv, cID, &conflict)
					c.traceConflict(dirty, bv, cID, cmp.lit.Not())
					return conflict, false
				case False:
				default:
					c.logAndEnqueue(bv, cID, cmp.lit.Not())
				}
			} else if holdsLower(cmp.op, under, cmp.w) {
				switch c.host.Value(cmp.lit) {
				case True:
				case False:
					conflict = []z.Lit{cmp.lit}
					c.buildValueReason(cmp.op, bv, cID, &conflict)
					c.traceConflict(dirty, bv, cID, cmp.lit)
					return conflict, false
				default:
					c.logAndEnqueue(bv, cID, cmp.lit)
				}
			}
		}

		for _, cID := range b.bvCompares {
			cmp := &c.comparisons[cID]
			other := cmp.other
			c.updateApproximations(other)
			underOther := c.bvs[other].under
			if holdsUpper(cmp.op, over, underOther) {
				switch c.host.Value(cmp.lit) {
				case True:
				case False:
					conflict = []z.Lit{cmp.lit}
					c.buildValueReasonBV(cmp.op, bv, other, cID, &conflict)
					c.traceConflict(dirty, bv, cID, cmp.lit)
					return conflict, false
				default:
					c.logAndEnqueue(bv, cID, cmp.lit)
				}
			} else if holdsUpperNeg(cmp.op, over, underOther) {
				switch c.host.Value(cmp.lit) {
				case True:
					conflict = []z.Lit{cmp.lit.Not()}
					c.buildValueReasonBV(cmp.op.Negate(), bv, other, cID, &conflict)
					c.traceConflict(dirty, bv, cID, cmp.lit.Not())
					return conflict, false
				case False:
				default:
					c.logAndEnqueue(bv, cID, cmp.lit.Not())
				}
			}
		}

		for i := len(b.bvCompares) - 1; i >= 0; i-- {
			cID := b.bvCompares[i]
			cmp := &c.comparisons[cID]
			other := cmp.other
			c.updateApproximations(other)
			overOther := c.bvs[other].over
			if holdsLowerNeg(cmp.op, under, overOther) {
				switch c.host.Value(cmp.lit) {
				case True:
					conflict = []z.Lit{cmp.lit.Not()}
					c.buildValueReasonBV(cmp.op.Negate(), bv, other, cID, &conflict)
					c.traceConflict(dirty, bv, cID, cmp.lit.Not())
					return conflict, false
				case False:
				default:
					c.logAndEnqueue(bv, cID, cmp.lit.Not())
				}
			} else if holdsLower(cmp.op, under, overOther) {
				switch c.host.Value(cmp.lit) {
				case True:
				case False:
					conflict = []z.Lit{cmp.lit}
					c.buildValueReasonBV(cmp.op, bv, other, cID, &conflict)
					c.traceConflict(dirty, bv, cID, cmp.lit)
					return conflict, false
				default:
					c.logAndEnqueue(bv, cID, cmp.lit)
				}
			}
		}

		if tid := b.theoryID; tid >= 0 {
			c.subTheories[tid].EnqueueBV(bv)
		}
		b.dirty = false
	}

	c.dirtyQueue = c.dirtyQueue[:0]
	c.requiresPropagation = false
	c.cfg.Tracer.Trace(&propagationSnapshot{dirty: dirty})
	return nil, true
}

// logAndEnqueue emits the promised per-propagated-literal debug line
// and hands lit to theoryEnqueue.
func (c *Core[W]) logAndEnqueue(bv, cID int, lit z.Lit) {
	c.Log().Debugf("bv %d: comparison %d propagated %s", bv, cID, lit)
	c.theoryEnqueue(lit)
}

// traceConflict emits the promised per-conflicting-literal debug line
// and reports the conflict to the configured Tracer before Propagate
// returns it to the host.
func (c *Core[W]) traceConflict(dirty []int, bv, cID int, falseLit z.Lit) {
	c.Log().Debugf("bv %d: comparison %d conflicts on %s", bv, cID, falseLit)
	c.cfg.Tracer.Trace(&propagationSnapshot{
		dirty:     dirty,
		conflicts: []AppliedComparison{{BV: bv, ComparisonIndex: cID, Literal: falseLit.String()}},
	})
}

// holdsUpper reports that the upper bound already forces lit true:
// (lt, over<to) or (leq, over<=to).
func holdsUpper[W Weight[W]](op Op, over, to W) bool {
	switch op {
	case Lt:
		return over.Less(to)
	case Leq:
		return over.LessEq(to)
	default:
		return false
	}
}

// holdsUpperNeg reports that the upper bound already forces lit
// false: (gt, over<=to) or (geq, over<to).
func holdsUpperNeg[W Weight[W]](op Op, over, to W) bool {
	switch op {
	case Gt:
		return over.LessEq(to)
	case Geq:
		return over.Less(to)
	default:
		return false
	}
}

// holdsLowerNeg reports that the lower bound already forces lit
// false: (lt, under>=to) or (leq, under>to).
func holdsLowerNeg[W Weight[W]](op Op, under, to W) bool {
	switch op {
	case Lt:
		return to.LessEq(under)
	case Leq:
		return to.Less(under)
	default:
		return false
	}
}

// holdsLower reports that the lower bound already forces lit true:
// (gt, under>to) or (geq, under>=to).
func holdsLower[W Weight[W]](op Op, under, to W) bool {
	switch op {
	case Gt:
		return to.Less(under)
	case Geq:
		return to.LessEq(under)
	default:
		return false
	}
}
