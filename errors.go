package monosat

import (
	"fmt"

	"github.com/pkg/errors"
)

// Redefinition is raised when newBitvector is called on an id that
// already has a slot, or when a comparison is built against a
// bitvector id the core has never seen.
type Redefinition struct {
	BV int
}

func (e *Redefinition) Error() string {
	return fmt.Sprintf("monosat: bitvector %d already defined or undefined", e.BV)
}

// InvariantViolation marks a debug assertion failure: value(l)
// disagreeing with the host, a stale interval, or similar internal
// inconsistency. A correct implementation and a well-behaved host
// never trigger this in production; it exists so bugs fail loudly
// instead of silently producing wrong models.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return "monosat: invariant violation: " + e.Msg
}

// UnsupportedWeightOp is raised when a Weight instantiation cannot
// provide a capability the core needs, e.g. exact ceiling division on
// an arbitrary-precision rational.
type UnsupportedWeightOp struct {
	Op string
}

func (e *UnsupportedWeightOp) Error() string {
	return "monosat: weight type does not support " + e.Op
}

func panicRedefinition(bv int) {
	panic(errors.WithStack(&Redefinition{BV: bv}))
}

func panicInvariant(format string, args ...interface{}) {
	panic(errors.WithStack(&InvariantViolation{Msg: fmt.Sprintf(format, args...)}))
}

func panicUnsupported(op string) {
	panic(errors.WithStack(&UnsupportedWeightOp{Op: op}))
}
