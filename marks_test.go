package gstile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjwise/gstile"
)

func TestMarkSetFromBitsEmptyMeansAllClear(t *testing.T) {
	m, err := gstile.MarkSetFromBits("", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Len())
	for i := 0; i < 5; i++ {
		assert.False(t, m.Get(i))
	}
}

func TestMarkSetFromBitsParses(t *testing.T) {
	m, err := gstile.MarkSetFromBits("01001", 5)
	require.NoError(t, err)
	assert.False(t, m.Get(0))
	assert.True(t, m.Get(1))
	assert.False(t, m.Get(2))
	assert.False(t, m.Get(3))
	assert.True(t, m.Get(4))
}

func TestMarkSetFromBitsLengthMismatch(t *testing.T) {
	_, err := gstile.MarkSetFromBits("01", 5)
	assert.ErrorIs(t, err, gstile.ErrInvalidArgument)
}

func TestMarkSetFromBitsInvalidCharacter(t *testing.T) {
	_, err := gstile.MarkSetFromBits("012", 3)
	assert.ErrorIs(t, err, gstile.ErrInvalidArgument)
}

func TestMarkSetSetRangeAndAnySetInRange(t *testing.T) {
	m := gstile.NewMarkSet(10)
	assert.False(t, m.AnySetInRange(0, 10))

	m.SetRange(3, 6)
	assert.True(t, m.Get(3))
	assert.True(t, m.Get(4))
	assert.True(t, m.Get(5))
	assert.False(t, m.Get(6))

	assert.True(t, m.AnySetInRange(0, 4))
	assert.True(t, m.AnySetInRange(5, 7))
	assert.False(t, m.AnySetInRange(6, 10))
}

func TestMarkSetAllSet(t *testing.T) {
	m := gstile.NewMarkSet(4)
	assert.False(t, m.AllSet())
	m.SetRange(0, 4)
	assert.True(t, m.AllSet())
}

func TestMarkSetAllSetEmpty(t *testing.T) {
	m := gstile.NewMarkSet(0)
	assert.True(t, m.AllSet())
}

func TestMarkSetClone(t *testing.T) {
	m := gstile.NewMarkSet(4)
	m.Set(1)
	clone := m.Clone()
	clone.Set(2)

	assert.True(t, m.Get(1))
	assert.False(t, m.Get(2))
	assert.True(t, clone.Get(1))
	assert.True(t, clone.Get(2))
}

func TestMarkSetSpansMultipleWords(t *testing.T) {
	m := gstile.NewMarkSet(130)
	m.Set(0)
	m.Set(63)
	m.Set(64)
	m.Set(129)

	assert.True(t, m.Get(0))
	assert.True(t, m.Get(63))
	assert.True(t, m.Get(64))
	assert.True(t, m.Get(129))
	assert.False(t, m.Get(65))
	assert.False(t, m.AllSet())
}
