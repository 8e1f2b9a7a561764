package subset_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/genramsey/subset"
)

func collect(seq func(func([]int) bool)) [][]int {
	var out [][]int
	seq(func(s []int) bool {
		out = append(out, slices.Clone(s))
		return true
	})
	return out
}

func TestCombinations_Lexicographic(t *testing.T) {
	got := collect(subset.Combinations(4, 2))
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)
}

func TestCombinations_Edges(t *testing.T) {
	assert.Equal(t, [][]int{{}}, collect(subset.Combinations(3, 0)))
	assert.Equal(t, [][]int{{}}, collect(subset.Combinations(0, 0)))
	assert.Equal(t, [][]int{{0, 1, 2}}, collect(subset.Combinations(3, 3)))
	assert.Empty(t, collect(subset.Combinations(3, 4)))
	assert.Empty(t, collect(subset.Combinations(3, -1)))
	assert.Empty(t, collect(subset.Combinations(-1, 0)))
}

func TestCombinations_EarlyStop(t *testing.T) {
	seen := 0
	for range subset.Combinations(10, 3) {
		seen++
		if seen == 5 {
			break
		}
	}
	assert.Equal(t, 5, seen)
}

func TestPowerset_Order(t *testing.T) {
	got := collect(subset.Powerset([]int{0, 1, 2}))
	want := [][]int{{}, {0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}
	assert.Equal(t, want, got)

	got = collect(subset.Powerset([]int{5, 7}))
	assert.Equal(t, [][]int{{}, {5}, {7}, {5, 7}}, got)

	assert.Equal(t, [][]int{{}}, collect(subset.Powerset(nil)))
}

func TestPowerset_Size(t *testing.T) {
	n := 0
	for range subset.Powerset([]int{0, 1, 2, 3, 4, 5}) {
		n++
	}
	assert.Equal(t, 64, n)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 10, subset.Count(5, 2))
	assert.Equal(t, 1, subset.Count(5, 0))
	assert.Equal(t, 0, subset.Count(5, 6))
	assert.Equal(t, 0, subset.Count(5, -1))
}

func TestMaskMembers(t *testing.T) {
	s := []int{0, 3, 63}
	m := subset.Mask(s)
	assert.Equal(t, uint64(1|1<<3|1<<63), m)
	assert.Equal(t, s, subset.Members(m))
	assert.Empty(t, subset.Members(0))
}

func TestIsValid(t *testing.T) {
	assert.True(t, subset.IsValid(3, nil))
	assert.True(t, subset.IsValid(3, []int{0, 2}))
	assert.False(t, subset.IsValid(3, []int{2, 0}))
	assert.False(t, subset.IsValid(3, []int{1, 1}))
	assert.False(t, subset.IsValid(3, []int{3}))
	assert.False(t, subset.IsValid(3, []int{-1}))
}
