package orderedset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/subdue/orderedset"
)

func TestAdd_DeduplicatesAndPreservesOrder(t *testing.T) {
	s := orderedset.New[int]()
	s.Add(3)
	s.Add(1)
	s.Add(3)
	s.Add(2)

	assert.Equal(t, []int{3, 1, 2}, s.Slice())
	assert.Equal(t, 3, s.Len())
}

func TestEqual_IgnoresOrder(t *testing.T) {
	a := orderedset.NewFromSlice([]int{1, 2, 3})
	b := orderedset.NewFromSlice([]int{3, 2, 1})
	assert.True(t, a.Equal(b))

	c := orderedset.NewFromSlice([]int{1, 2})
	assert.False(t, a.Equal(c))
}

func TestIntersects(t *testing.T) {
	a := orderedset.NewFromSlice([]int{1, 2})
	b := orderedset.NewFromSlice([]int{2, 3})
	c := orderedset.NewFromSlice([]int{9})

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestSetAlgebra(t *testing.T) {
	a := orderedset.NewFromSlice([]int{1, 2, 3})
	b := orderedset.NewFromSlice([]int{2, 3, 4})

	assert.Equal(t, []int{1, 2, 3, 4}, a.Union(b).Slice())
	assert.Equal(t, []int{2, 3}, a.Intersection(b).Slice())
	assert.Equal(t, []int{1}, a.Difference(b).Slice())
}
