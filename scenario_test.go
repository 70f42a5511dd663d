package monosat

import (
	"testing"

	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: single 4-bit BV, constant threshold.
func TestScenarioS1(t *testing.T) {
	h := newFakeHost()
	c := newTestCore(h)
	bits := newBits(c, h, 0, 4)

	l := c.NewComparison(Lt, 0, Uint64(5), nil)

	decide(c, h, bits[0])    // weight 1
	decide(c, h, bits[2])    // weight 4
	decide(c, h, bits[1].Not())
	decide(c, h, bits[3].Not())

	conflict, ok := c.Propagate()
	require.True(t, ok)
	require.Nil(t, conflict)

	assert.Equal(t, Uint64(5), c.Under(0))
	assert.Equal(t, Uint64(5), c.Over(0))
	assert.Equal(t, False, h.Value(l), "5 < 5 must be false")

	reason := c.BuildReason(l.Not(), c.propMarker)
	assert.ElementsMatch(t, []interface{}{l.Not(), bits[0].Not(), bits[2].Not()},
		toAny(reason))
}

// S2: tightening via a sibling comparison.
func TestScenarioS2(t *testing.T) {
	h := newFakeHost()
	c := newTestCore(h)
	newBits(c, h, 0, 4)

	m := c.NewComparison(Leq, 0, Uint64(7), nil)
	decide(c, h, m)
	_, ok := c.Propagate()
	require.True(t, ok)
	assert.Equal(t, Uint64(7), c.Over(0))

	l := c.NewComparison(Lt, 0, Uint64(8), nil)
	assert.Equal(t, True, h.Value(l), "over<=7 must force 8 > bv eagerly")

	reason := c.BuildReason(l, c.propMarker)
	assert.ElementsMatch(t, []interface{}{l, m.Not()}, toAny(reason))
}

// S3: BV-vs-BV midpoint split.
func TestScenarioS3(t *testing.T) {
	h := newFakeHost()
	c := newTestCore(h)
	b := newBits(c, h, 0, 4) // value 6 = 0b0110
	newBits(c, h, 1, 4)      // c, left unknown

	decide(c, h, b[0].Not())
	decide(c, h, b[1])
	decide(c, h, b[2])
	decide(c, h, b[3].Not())

	n := c.NewComparison(Geq, 1, Uint64(8), nil)
	l := c.NewComparisonBV(Lt, 0, 1, nil)

	decide(c, h, n)
	conflict, ok := c.Propagate()
	require.True(t, ok)
	require.Nil(t, conflict)

	assert.Equal(t, True, h.Value(l), "over[b]=6 < under[c]=8 must force l true")

	reason := c.BuildReason(l, c.propMarker)
	assert.Contains(t, toAny(reason), l)
	assert.Contains(t, toAny(reason), n.Not())
	assert.Contains(t, toAny(reason), b[0])
	assert.Contains(t, toAny(reason), b[3])
}

// S4: conflict. Asserting (bv <= 3) true while all four bits are true
// (value 15) must fail propagation.
func TestScenarioS4(t *testing.T) {
	h := newFakeHost()
	c := newTestCore(h)
	bits := newBits(c, h, 0, 4)

	m := c.NewComparison(Leq, 0, Uint64(3), nil)
	assign(c, h, m)
	for _, bl := range bits {
		assign(c, h, bl)
	}

	conflict, ok := c.Propagate()
	require.False(t, ok)
	require.NotNil(t, conflict)
	assert.Contains(t, toAny(conflict), m.Not())
	for _, bl := range bits {
		assert.Contains(t, toAny(conflict), bl.Not())
	}
}

// S5: backtrack round-trip.
func TestScenarioS5(t *testing.T) {
	h := newFakeHost()
	c := newTestCore(h)
	newBits(c, h, 0, 4)
	c.updateApproximations(0)

	preUnder, preOver := c.Under(0), c.Over(0)

	m := c.NewComparison(Leq, 0, Uint64(7), nil)
	decide(c, h, m)
	_, ok := c.Propagate()
	require.True(t, ok)
	assert.Equal(t, Uint64(7), c.Over(0))

	// a real host unassigns m itself as part of its own backtrack;
	// the fake host is told to do the same before the theory's side
	// of the rollback runs.
	delete(h.values, m.Var())
	c.BacktrackUntilLevel(0)

	assert.Equal(t, Unknown, h.Value(m))
	c.updateApproximations(0)
	assert.Equal(t, preUnder, c.Under(0))
	assert.Equal(t, preOver, c.Over(0))
}

func toAny(lits []z.Lit) []interface{} {
	out := make([]interface{}, len(lits))
	for i, l := range lits {
		out[i] = l
	}
	return out
}
