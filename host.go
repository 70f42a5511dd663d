package monosat

import "github.com/go-air/gini/z"

// Marker is an opaque token the host mints for this theory via
// NewReasonMarker and later passes back to BuildReason. This core
// mints a single marker and uses it for every enqueue it makes, eager
// or propagation-time. It is a cheap tag, not a pointer into theory
// state.
type Marker uint32

// Host is the seam this theory consumes from its SAT driver. It is
// deliberately small: everything the driver-specific parts of a CDCL
// solver do (clause learning, restarts, branching heuristics) stay on
// the other side of it.
type Host interface {
	// NewVar allocates a fresh host variable.
	NewVar() z.Var

	// NewReasonMarker registers a fresh marker this theory can pass to
	// Enqueue and later receive back via BuildReason. label is a
	// human-readable hint only (e.g. "comparisonprop"), not an
	// identity.
	NewReasonMarker(label string) Marker

	// Enqueue asks the host to assign l, justified by marker should
	// the host ever need to explain it.
	Enqueue(l z.Lit, marker Marker)

	// Value returns the current truth value of l, or Unknown.
	Value(l z.Lit) Tri

	// Level returns the decision level at which var(l) was assigned,
	// or -1 if it is unassigned.
	Level(v z.Var) int

	// AddClauseSafely adds a clause to the host's database. It must
	// tolerate already-satisfied or empty clauses at non-root levels.
	AddClauseSafely(lits []z.Lit)
}

// Tri is a three-valued truth value.
type Tri int8

const (
	Unknown Tri = 0
	True    Tri = 1
	False   Tri = -1
)

func (t Tri) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// role distinguishes what a localVar stands for: a bit of some
// bitvector, or a comparison literal.
type role int8

const (
	roleBit role = iota
	roleComparison
)

// localVar is the per-local-variable record: which host variable it
// maps to, and what it means inside this theory.
type localVar struct {
	host z.Var
	kind role

	bv  int // valid when kind == roleBit or roleComparison
	bit int // valid when kind == roleBit: index within bvs[bv].bits
	cmp int // valid when kind == roleComparison: index into comparisons
}
