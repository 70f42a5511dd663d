package monosat

import "github.com/go-air/gini/z"

// bitvector is the per-bitvector record: an ordered sequence of bit
// literals (LSB at index 0), its constancy flag, its current interval,
// an optional subscribed sub-theory, and the two sorted comparison
// indices used to look up catalogued comparisons against it.
type bitvector[W Weight[W]] struct {
	bits     []z.Lit
	isConst  bool
	under    W
	over     W
	theoryID int // -1 if none registered

	dirty            bool
	backtrackPending bool

	compares   []int // indices into Core.comparisons, sorted ascending by w
	bvCompares []int // indices into Core.comparisons, sorted ascending by other bv id
}

// NewBitvector allocates slot bv, registers each bit as a local
// variable linked to a fresh (or supplied) host variable, initialises
// the interval to [0,0], and marks the bitvector dirty. Redefining an
// existing id is fatal.
//
// bits may be supplied with some entries already bound to host
// variables (outerBits); pass z.LitNull for a bit that should get a
// freshly allocated host variable. isConst should be true iff every
// bit is pinned by an external constraint at construction time — the
// host, not this theory, is the source of truth for that.
func (c *Core[W]) NewBitvector(bv int, outerBits []z.Lit, isConst bool) []z.Lit {
	if bv < len(c.bvs) && c.bvs[bv].bits != nil {
		panicRedefinition(bv)
	}
	for bv >= len(c.bvs) {
		c.bvs = append(c.bvs, bitvector[W]{theoryID: -1})
	}

	bits := make([]z.Lit, len(outerBits))
	for i, outer := range outerBits {
		var outerVar *z.Var
		if outer != z.LitNull {
			v := outer.Var()
			outerVar = &v
		}
		lv := c.newLocalVar(outerVar)
		c.localVars[lv.Var()].kind = roleBit
		c.localVars[lv.Var()].bv = bv
		c.localVars[lv.Var()].bit = i
		bits[i] = lv.Pos()
	}

	c.bvs[bv] = bitvector[W]{
		bits:     bits,
		isConst:  isConst,
		under:    c.zero,
		over:     c.zero,
		theoryID: -1,
	}
	c.markDirty(bv)
	return bits
}

// SetBitvectorTheory registers tid as bv's subscribed sub-theory: its
// EnqueueBV is called at the end of every Propagate pass over bv, and
// its BacktrackBV after every trail truncation that touched bv.
func (c *Core[W]) SetBitvectorTheory(bv int, tid int) {
	c.bvs[bv].theoryID = tid
}

// Width reports the number of bits of bitvector bv.
func (c *Core[W]) Width(bv int) int { return len(c.bvs[bv].bits) }

// Under and Over return the current interval of bitvector bv. Callers
// that need a guaranteed-fresh value should call Propagate first;
// these accessors return whatever was last computed.
func (c *Core[W]) Under(bv int) W { return c.bvs[bv].under }
func (c *Core[W]) Over(bv int) W  { return c.bvs[bv].over }

// BVView is the read-only window a sub-theory is handed: under[b],
// over[b], and bits[b], enforced by the type system rather than by
// convention so a sub-theory cannot reach into Core's mutable state.
type BVView[W Weight[W]] struct {
	core *Core[W]
	bv   int
}

func (v BVView[W]) ID() int      { return v.bv }
func (v BVView[W]) Under() W     { return v.core.bvs[v.bv].under }
func (v BVView[W]) Over() W      { return v.core.bvs[v.bv].over }
func (v BVView[W]) Bits() []z.Lit {
	out := make([]z.Lit, len(v.core.bvs[v.bv].bits))
	copy(out, v.core.bvs[v.bv].bits)
	return out
}
func (v BVView[W]) IsConst() bool { return v.core.bvs[v.bv].isConst }

func (c *Core[W]) markDirty(bv int) {
	if !c.bvs[bv].dirty {
		c.bvs[bv].dirty = true
		c.dirtyQueue = append(c.dirtyQueue, bv)
	}
	c.requiresPropagation = true
}
