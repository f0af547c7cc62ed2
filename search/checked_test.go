package search_test

import (
	"testing"

	"github.com/katalvlaran/ordstat/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequireSorted reports the first inversion as a wrapped ErrNotSorted.
func TestRequireSorted(t *testing.T) {
	require.NoError(t, search.RequireSorted([]int{1, 2, 2, 3}, intLess))
	require.NoError(t, search.RequireSorted([]int{}, intLess))

	err := search.RequireSorted([]int{2, 1, 4, 3}, intLess)
	require.ErrorIs(t, err, search.ErrNotSorted)
	assert.Contains(t, err.Error(), "element 1 (1) is less than element 0 (2)")

	assert.ErrorIs(t, search.RequireSorted([]int{1}, nil), search.ErrNilLess)
}

// TestCheckedLowerBound fails fast on unsorted input and nil arguments.
func TestCheckedLowerBound(t *testing.T) {
	ge3 := func(x int) bool { return x >= 3 }

	i, err := search.CheckedLowerBound([]int{1, 2, 3, 3, 3, 3, 4, 5}, ge3, intLess)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = search.CheckedLowerBound([]int{3, 1, 2}, ge3, intLess)
	assert.ErrorIs(t, err, search.ErrNotSorted)

	_, err = search.CheckedLowerBound([]int{1, 2}, nil, intLess)
	assert.ErrorIs(t, err, search.ErrNilPredicate)

	_, err = search.CheckedLowerBound([]int{1, 2}, ge3, nil)
	assert.ErrorIs(t, err, search.ErrNilLess)
}

// TestCheckedUpperBound mirrors TestCheckedLowerBound.
func TestCheckedUpperBound(t *testing.T) {
	le3 := func(x int) bool { return x <= 3 }

	i, err := search.CheckedUpperBound([]int{1, 2, 3, 3, 3, 3, 4, 5}, le3, intLess)
	require.NoError(t, err)
	assert.Equal(t, 6, i)

	_, err = search.CheckedUpperBound([]int{5, 4}, le3, intLess)
	assert.ErrorIs(t, err, search.ErrNotSorted)

	_, err = search.CheckedUpperBound([]int{1, 2}, nil, intLess)
	assert.ErrorIs(t, err, search.ErrNilPredicate)
}

// TestCheckedContains validates before searching.
func TestCheckedContains(t *testing.T) {
	ok, err := search.CheckedContains([]int{1, 2, 3, 4}, 2, intLess)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = search.CheckedContains([]int{1, 2, 3, 4}, 5, intLess)
	require.NoError(t, err)
	assert.False(t, ok)

	// 2 is present, but the unsorted input must be rejected regardless
	ok, err = search.CheckedContains([]int{2, 1, 4, 3}, 2, intLess)
	assert.ErrorIs(t, err, search.ErrNotSorted)
	assert.False(t, ok)

	_, err = search.CheckedContains([]int{1}, 1, nil)
	assert.ErrorIs(t, err, search.ErrNilLess)
}
