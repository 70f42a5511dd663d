package monosat

import "github.com/go-air/gini/z"

// fakeHost is a minimal Host for exercising Core without a real SAT
// driver attached, driving theory internals directly against small
// hand-built fixtures rather than a running gini.S.
type fakeHost struct {
	next    z.Var
	values  map[z.Var]Tri
	levels  map[z.Var]int
	level   int
	markers int
	clauses [][]z.Lit
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		next:   1,
		values: make(map[z.Var]Tri),
		levels: make(map[z.Var]int),
	}
}

func (h *fakeHost) NewVar() z.Var {
	v := h.next
	h.next++
	return v
}

func (h *fakeHost) NewReasonMarker(string) Marker {
	h.markers++
	return Marker(h.markers)
}

func (h *fakeHost) Enqueue(l z.Lit, _ Marker) {
	v := l.Var()
	if l.Sign() < 0 {
		h.values[v] = False
	} else {
		h.values[v] = True
	}
	if _, ok := h.levels[v]; !ok {
		h.levels[v] = h.level
	}
}

func (h *fakeHost) Value(l z.Lit) Tri {
	t, ok := h.values[l.Var()]
	if !ok {
		return Unknown
	}
	if l.Sign() < 0 {
		return -t
	}
	return t
}

func (h *fakeHost) Level(v z.Var) int {
	if lv, ok := h.levels[v]; ok {
		return lv
	}
	return -1
}

func (h *fakeHost) AddClauseSafely(lits []z.Lit) {
	h.clauses = append(h.clauses, lits)
}

// decide simulates a host-side decision: bumps the decision level,
// assigns l, and tells core about it via EnqueueTheory exactly as a
// real host's decision loop would.
func decide[W Weight[W]](c *Core[W], h *fakeHost, l z.Lit) {
	h.level++
	h.Enqueue(l, 0)
	c.NewDecisionLevel()
	c.EnqueueTheory(l)
}

// assign records l at the current decision level without opening a
// new one, the way a host-side unit propagation (rather than a
// branching decision) would. In particular, assigning at level 0
// models a root-level fact: buildValueReason's bit-skipping
// minimisation only drops a bit from a reason when its level is > 0,
// so root-level assignments always remain in the explanation.
func assign[W Weight[W]](c *Core[W], h *fakeHost, l z.Lit) {
	h.Enqueue(l, 0)
	c.EnqueueTheory(l)
}

func newTestCore(h *fakeHost) *Core[Uint64] {
	return New[Uint64](h, Uint64(0), Uint64(1))
}

func newBits[W Weight[W]](c *Core[W], h *fakeHost, bv, width int) []z.Lit {
	outer := make([]z.Lit, width)
	for i := range outer {
		outer[i] = z.LitNull
	}
	return c.NewBitvector(bv, outer, false)
}
