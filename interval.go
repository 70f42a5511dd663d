package monosat

// updateApproximations rebuilds under[bv]/over[bv] from scratch, first
// from bv's bit assignments
// (bit i contributes 2^i to both bounds if true, to over only if
// unassigned, to neither if false), then tightens both bounds against
// every constant-threshold comparison whose literal is already
// decided. It is always correct to call eagerly and repeatedly: it
// never depends on the previous interval, only on the host's current
// variable assignment.
func (c *Core[W]) updateApproximations(bv int) {
	b := &c.bvs[bv]
	under, over := c.zero, c.zero
	for i, bit := range b.bits {
		switch c.host.Value(bit) {
		case True:
			pow := c.bw.at(i)
			under = under.Add(pow)
			over = over.Add(pow)
		case False:
			// contributes to neither bound
		default:
			over = over.Add(c.bw.at(i))
		}
	}

	for _, cID := range b.compares {
		cmp := &c.comparisons[cID]
		val := c.host.Value(cmp.lit)
		switch cmp.op {
		case Lt:
			if val == True && cmp.w.LessEq(over) {
				over = cmp.w.Sub(c.one)
			} else if val == False && under.Less(cmp.w) {
				under = cmp.w
			}
		case Leq:
			if val == True && cmp.w.Less(over) {
				over = cmp.w
			} else if val == False && under.LessEq(cmp.w) {
				under = cmp.w.Add(c.one)
			}
		case Gt:
			if val == True && under.LessEq(cmp.w) {
				under = cmp.w.Add(c.one)
			} else if val == False && cmp.w.Less(over) {
				over = cmp.w
			}
		default: // Geq
			if val == True && under.Less(cmp.w) {
				under = cmp.w
			} else if val == False && cmp.w.LessEq(over) {
				over = cmp.w.Sub(c.one)
			}
		}
	}

	b.under, b.over = under, over
	c.Log().Debugf("bv %d: refreshed to [%s, %s]", bv, under, over)
}

// checkSynced is a test-only assertion helper: a plain function tests
// call directly to check the incrementally maintained interval agrees
// with one rebuilt from scratch.
func (c *Core[W]) checkSynced(bv int) bool {
	saved := c.bvs[bv]
	c.updateApproximations(bv)
	under, over := c.bvs[bv].under, c.bvs[bv].over
	ok := weightEqual(under, saved.under) && weightEqual(over, saved.over)
	c.bvs[bv] = saved
	return ok
}
