package monosat

// SubTheory is the contract a client theory built on top of a
// bitvector must satisfy. A sub-theory registers itself against one
// or more bitvectors via SetBitvectorTheory and Core calls back into
// it twice: EnqueueBV after every Propagate pass that refreshed that
// bitvector's interval, and BacktrackBV after every trail rollback
// that invalidated it. Each callback receives only the bitvector id;
// a sub-theory reads the bitvector through View, which returns a
// BVView, a read-only window onto it.
type SubTheory[W Weight[W]] interface {
	EnqueueBV(bv int)
	BacktrackBV(bv int)
}

// RegisterSubTheory appends t to Core's sub-theory table and returns
// the id to pass to SetBitvectorTheory. A Core's sub-theory slice only
// ever grows, mirroring how bitvectors and comparisons are append-only
// too.
func (c *Core[W]) RegisterSubTheory(t SubTheory[W]) int {
	c.subTheories = append(c.subTheories, t)
	return len(c.subTheories) - 1
}

// View returns the read-only accessor a sub-theory should use inside
// its EnqueueBV/BacktrackBV callbacks instead of reaching back into
// Core's private fields.
func (c *Core[W]) View(bv int) BVView[W] {
	return BVView[W]{core: c, bv: bv}
}
