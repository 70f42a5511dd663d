// Package monosat implements a bitvector theory for a CDCL-style SAT
// driver: it tracks a tightening [under, over] interval per bitvector,
// maintains a catalogue of comparison literals against constants and
// against other bitvectors, and propagates/explains/backtracks those
// literals through a Host SAT driver. The core is generic over the
// scalar domain a bitvector's value lives in, so the same logic
// serves native unsigned integers, arbitrary-precision rationals, and
// best-effort floats.
package monosat

import (
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Core is the theory itself: every bitvector, comparison, and piece of
// trail/backtrack state it owns, wired together. W is the Weight
// instantiation this Core was built with; all bitvectors and
// comparisons it owns share it.
type Core[W Weight[W]] struct {
	host Host
	cfg  Config

	zero, one W
	bw        *bitWeights[W]

	bvs         []bitvector[W]
	comparisons []comparison[W]
	localVars   []localVar
	hostIndex   map[z.Var]int

	propMarker Marker

	trail    []trailEntry
	trailLim []int

	dirtyQueue          []int
	backtrackQueue      []int
	backtrackQueued     map[int]bool
	requiresPropagation bool

	subTheories []SubTheory[W]
}

// lvRef is the handle newLocalVar returns: lv.Pos() is the positive
// literal over the freshly minted (or supplied) host variable, and
// lv.Var() is the index into Core.localVars that backs it — the two
// pieces of information every NewBitvector/NewComparison call site
// needs, kept distinct from gini's own z.Var/z.Lit so neither is
// mistaken for the other.
type lvRef struct {
	idx  int
	host z.Var
}

func (lv lvRef) Pos() z.Lit { return lv.host.Pos() }
func (lv lvRef) Var() int   { return lv.idx }

// New builds a Core for Weight instantiation W, with zero and one the
// two distinguished constants of that instantiation (e.g. Uint64(0),
// Uint64(1); NewBigRat(big.NewRat(0,1)), NewBigRat(big.NewRat(1,1))).
func New[W Weight[W]](host Host, zero, one W, opts ...Option) *Core[W] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Core[W]{
		host:            host,
		cfg:             cfg,
		zero:            zero,
		one:             one,
		bw:              newBitWeights(zero, one),
		backtrackQueued: make(map[int]bool),
		hostIndex:       make(map[z.Var]int),
	}
	c.propMarker = host.NewReasonMarker("bvtheory")
	return c
}

// Log exposes the configured logger to the rest of the package.
func (c *Core[W]) Log() logrus.FieldLogger { return c.cfg.Log }

// newLocalVar allocates a fresh localVar slot. If outerVar is
// non-nil, the local variable is bound to that host variable directly
// (the caller already owns it, e.g. a pre-existing CNF variable being
// equated to a comparison literal); otherwise a new host variable is
// requested from the Host.
func (c *Core[W]) newLocalVar(outerVar *z.Var) lvRef {
	var hv z.Var
	if outerVar != nil {
		hv = *outerVar
	} else {
		hv = c.host.NewVar()
	}
	idx := len(c.localVars)
	c.localVars = append(c.localVars, localVar{host: hv})
	c.hostIndex[hv] = idx
	return lvRef{idx: idx, host: hv}
}

// enqueueEager asks the host to assign l under this theory's standing
// reason marker, used whenever a freshly-created comparison literal
// is already decided by the interval in force at creation time. It is
// a thin wrapper so every eager call site is visibly distinct from a
// propagation-time enqueue.
func (c *Core[W]) enqueueEager(l z.Lit) {
	if c.host.Value(l) == False {
		// already forced to the opposite polarity: a contradiction
		// discovered at construction time rather than during search.
		panicInvariant("eager enqueue of %v contradicts existing host value", l)
	}
	c.theoryEnqueue(l)
}

// theoryEnqueue asks the host to assign l under the standing reason
// marker, then immediately records the assignment on its own trail
// via EnqueueTheory, rather than waiting for the host to call back
// asynchronously. This core and its host run cooperatively on a
// single thread, so nothing else runs between the two calls.
func (c *Core[W]) theoryEnqueue(l z.Lit) {
	c.host.Enqueue(l, c.propMarker)
	c.EnqueueTheory(l)
}

// trailEntry records one theory-owned assignment for backtracking.
type trailEntry struct {
	lit z.Lit
	// touchedBV is the bitvector this assignment dirtied, so
	// BacktrackUntilLevel/BacktrackUntilLit know which bvs to re-mark
	// and re-notify.
	touchedBV int
}

func panicIfErr(err error) {
	if err != nil {
		panic(errors.WithStack(err))
	}
}
