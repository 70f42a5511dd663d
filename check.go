package monosat

// Check is the final-model consistency check: it refreshes every
// bitvector's interval and then verifies that every decided
// comparison literal whose bitvector(s) have collapsed to a single
// value (under equals over) agrees with the arithmetic on that value.
// A refreshed interval that is empty (over below under), as happens
// when a decided constant comparison contradicts the assigned bits,
// fails the check. A comparison whose literal is still Unknown, or
// whose bitvector(s) have not collapsed, is skipped: Check is a check
// against a finished model, not a propagation pass. It
// reports false rather than panicking, since disagreement here means
// the host accepted a model this theory does not endorse, which is
// the host's decision to act on, not this theory's to abort over.
func (c *Core[W]) Check() bool {
	for bv := range c.bvs {
		c.updateApproximations(bv)
		if c.bvs[bv].over.Less(c.bvs[bv].under) {
			c.Log().Debugf("check: bv %d has an empty interval", bv)
			return false
		}
	}

	for i := range c.comparisons {
		cmp := &c.comparisons[i]
		val := c.host.Value(cmp.lit)
		if val == Unknown {
			continue
		}

		bv := cmp.bv
		under, over := c.bvs[bv].under, c.bvs[bv].over
		if !weightEqual(under, over) {
			continue
		}
		value := under

		op := cmp.op
		if val == False {
			op = op.Negate()
		}

		var holds bool
		if cmp.other < 0 {
			holds = compareHolds(op, value, cmp.w)
		} else {
			underOther, overOther := c.bvs[cmp.other].under, c.bvs[cmp.other].over
			if !weightEqual(underOther, overOther) {
				continue
			}
			holds = compareHolds(op, value, underOther)
		}

		if !holds {
			c.Log().Debugf("check: comparison %d (bv %d) disagrees with determined bits", i, bv)
			return false
		}
	}
	return true
}
