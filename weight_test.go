package monosat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64Weight(t *testing.T) {
	a, b := Uint64(7), Uint64(3)
	assert.Equal(t, Uint64(10), a.Add(b))
	assert.Equal(t, Uint64(4), a.Sub(b))
	assert.True(t, b.Less(a))
	assert.False(t, a.Less(b))
	assert.True(t, a.LessEq(a))

	q, ok := Uint64(10).CeilDiv(Uint64(3))
	assert.True(t, ok)
	assert.Equal(t, Uint64(4), q)

	q, ok = Uint64(9).FloorDiv(Uint64(3))
	assert.True(t, ok)
	assert.Equal(t, Uint64(3), q)

	_, ok = Uint64(1).CeilDiv(Uint64(0))
	assert.False(t, ok)
}

func TestBigRatWeight(t *testing.T) {
	a := NewBigRat(big.NewRat(3, 2))
	b := NewBigRat(big.NewRat(1, 2))
	assert.Equal(t, "2", a.Add(b).String())
	assert.True(t, b.Less(a))

	_, ok := a.CeilDiv(b)
	assert.False(t, ok, "rational ceildiv is deliberately unimplemented")
	_, ok = a.FloorDiv(b)
	assert.False(t, ok)
}

func TestFloat64Weight(t *testing.T) {
	a, b := Float64(7.5), Float64(2)
	q, ok := a.CeilDiv(b)
	assert.True(t, ok)
	assert.Equal(t, Float64(4), q)

	q, ok = a.FloorDiv(b)
	assert.True(t, ok)
	assert.Equal(t, Float64(3), q)
}

func TestBitWeightsPowersOfTwo(t *testing.T) {
	bw := newBitWeights(Uint64(0), Uint64(1))
	assert.Equal(t, Uint64(1), bw.at(0))
	assert.Equal(t, Uint64(2), bw.at(1))
	assert.Equal(t, Uint64(8), bw.at(3))
	assert.Equal(t, Uint64(1024), bw.at(10))
}
