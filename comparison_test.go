package monosat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6 / P5: canonicalisation. newComparisonBV(op, b, c) with b > c must
// return the negation of newComparisonBV(Flip(op), c, b), and must not
// create a second comparison record.
func TestCanonicalisation(t *testing.T) {
	h := newFakeHost()
	c := newTestCore(h)
	newBits(c, h, 3, 4)
	newBits(c, h, 5, 4)

	l1 := c.NewComparisonBV(Lt, 3, 5, nil)
	l2 := c.NewComparisonBV(Gt, 5, 3, nil)

	assert.Equal(t, l1, l2.Not())
	assert.Len(t, c.comparisons, 1, "canonicalisation must not create a second record")
}

// P6: idempotence. newComparison(op, b, w) called twice returns the
// same literal and adds no new record.
func TestComparisonIdempotence(t *testing.T) {
	h := newFakeHost()
	c := newTestCore(h)
	newBits(c, h, 0, 4)

	l1 := c.NewComparison(Lt, 0, Uint64(5), nil)
	before := len(c.comparisons)
	l2 := c.NewComparison(Lt, 0, Uint64(5), nil)

	assert.Equal(t, l1, l2)
	assert.Equal(t, before, len(c.comparisons))
}

func TestOpFlipAndNegate(t *testing.T) {
	for _, op := range []Op{Lt, Leq, Gt, Geq} {
		require.Equal(t, op, op.Flip().Flip())
		require.Equal(t, op, op.Negate().Negate())
	}
	assert.Equal(t, Gt, Lt.Flip())
	assert.Equal(t, Geq, Lt.Negate())
	assert.Equal(t, Gt, Leq.Negate())
}

// S1 (construction half): a freshly created constant comparison whose
// threshold is already decided by the current interval must be
// enqueued eagerly, without waiting for a Propagate call.
func TestEagerEnqueueAtConstruction(t *testing.T) {
	h := newFakeHost()
	c := newTestCore(h)
	bits := newBits(c, h, 0, 4)

	// fix bits so the value is exactly 5 (bit0, bit2 true; bit1, bit3 false)
	decide(c, h, bits[0])
	decide(c, h, bits[1].Not())
	decide(c, h, bits[2])
	decide(c, h, bits[3].Not())
	c.updateApproximations(0)

	l := c.NewComparison(Lt, 0, Uint64(8), nil)
	assert.Equal(t, True, h.Value(l), "5 < 8 should already be forced true at creation")
}
