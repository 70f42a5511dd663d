package monosat

import "github.com/go-air/gini/z"

// EnqueueTheory is called by the host whenever it assigns a local
// variable belonging to this theory
// (whether by decision, host propagation, or one of this theory's own
// eager/Propagate enqueues reaching the trail). It opens decision
// levels as needed, appends a trail entry, and marks the owning
// bitvector dirty so the next Propagate recomputes its interval.
func (c *Core[W]) EnqueueTheory(l z.Lit) {
	v := l.Var()
	lev := c.host.Level(v)
	for lev > len(c.trailLim) {
		c.NewDecisionLevel()
	}

	lv := &c.localVars[c.localIndex(v)]
	c.trail = append(c.trail, trailEntry{lit: l, touchedBV: lv.bv})
	c.markDirty(lv.bv)
}

// NewDecisionLevel opens a new decision level on the trail.
func (c *Core[W]) NewDecisionLevel() {
	c.trailLim = append(c.trailLim, len(c.trail))
}

// BacktrackUntilLevel unwinds the trail back to the boundary recorded
// for level, shrinks trailLim to match, re-marks every touched
// bitvector dirty so its interval is rebuilt on the next Propagate,
// and finally drains the backtrack-notify queue so every subscribed
// sub-theory observes the rollback exactly once, deduplicated against
// repeat notifications for the same bitvector.
func (c *Core[W]) BacktrackUntilLevel(level int) {
	if len(c.trailLim) <= level {
		return
	}
	stop := c.trailLim[level]
	for i := len(c.trail) - 1; i >= stop; i-- {
		bv := c.trail[i].touchedBV
		c.bvs[bv].dirty = true
		c.queueBacktrackNotify(bv)
	}
	c.trail = c.trail[:stop]
	c.trailLim = c.trailLim[:level]
	c.requiresPropagation = true
	c.drainBacktrackNotify()
}

// BacktrackUntilLit unwinds only as far as necessary to make lit
// unassigned again (a no-op if lit is already false or unknown), used
// when the host
// rebuilds a reason for a literal that has since been superseded on
// the trail.
func (c *Core[W]) BacktrackUntilLit(p z.Lit) {
	if c.host.Value(p) != True {
		return
	}
	i := len(c.trail) - 1
	for ; i >= 0; i-- {
		e := c.trail[i]
		c.bvs[e.touchedBV].dirty = true
		c.queueBacktrackNotify(e.touchedBV)
		if e.lit.Var() == p.Var() {
			break
		}
	}
	c.trail = c.trail[:i]
	c.requiresPropagation = true
	c.drainBacktrackNotify()
}

func (c *Core[W]) queueBacktrackNotify(bv int) {
	if !c.backtrackQueued[bv] {
		c.backtrackQueued[bv] = true
		c.backtrackQueue = append(c.backtrackQueue, bv)
	}
}

func (c *Core[W]) drainBacktrackNotify() {
	for len(c.backtrackQueue) > 0 {
		n := len(c.backtrackQueue) - 1
		bv := c.backtrackQueue[n]
		c.backtrackQueue = c.backtrackQueue[:n]
		c.backtrackQueued[bv] = false
		if tid := c.bvs[bv].theoryID; tid >= 0 {
			c.subTheories[tid].BacktrackBV(bv)
		}
	}
}

// DecideTheory reports that this core never elects its own decisions,
// leaving branching entirely to the host or to sub-theories with
// their own decision heuristics.
func (c *Core[W]) DecideTheory() (z.Lit, bool) {
	return z.LitNull, false
}

// localIndex maps a host variable back to the localVar slot that owns
// it through the hostIndex map. Hosts only ever hand this theory
// variables it bound itself (via newLocalVar); any other variable is
// an invariant violation and panics.
func (c *Core[W]) localIndex(v z.Var) int {
	if idx, ok := c.hostIndex[v]; ok {
		return idx
	}
	panicInvariant("variable %v does not belong to this theory", v)
	return -1
}
