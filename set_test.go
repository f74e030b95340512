package arraytable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Put(t *testing.T) {
	ss, err := NewSet(Equal[uint64], 4096, nil)
	require.NoError(t, err)

	require.NoError(t, ss.Put(1))
	require.NoError(t, ss.Put(1))
	assert.Equal(t, 1, ss.Len())
	assert.True(t, ss.Has(1))
	assert.False(t, ss.Has(2))
}

func TestSet_Put_Fill(t *testing.T) {
	ss, err := NewSet(Equal[uint64], 64, nil)
	require.NoError(t, err)

	for i := range uint64(64) {
		require.NoError(t, ss.Put(i))
	}

	require.ErrorIs(t, ss.Put(64), ErrCapacityExceeded)
}

func TestSet_Delete(t *testing.T) {
	var destroyed []string

	ss, err := NewSet(Equal[string], 8, func(k string) { destroyed = append(destroyed, k) })
	require.NoError(t, err)

	require.NoError(t, ss.Put("A"))
	require.NoError(t, ss.Put("B"))
	require.NoError(t, ss.Put("C"))

	require.True(t, ss.Delete("B"))
	require.False(t, ss.Delete("B"))
	assert.True(t, ss.Has("C"))
	assert.Equal(t, []string{"B"}, destroyed)

	ss.Destroy()
	assert.ElementsMatch(t, []string{"B", "A", "C"}, destroyed)
	assert.Zero(t, ss.Len())
}

func TestSet_InvalidCapacity(t *testing.T) {
	_, err := NewSet(Equal[int], 0, nil)
	require.ErrorIs(t, err, ErrAllocation)
}
