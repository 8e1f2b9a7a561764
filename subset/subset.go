package subset

import (
	"iter"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// Combinations yields every k-subset of [0, n) as an ascending slice, in
// lexicographic order. k < 0 or k > n yields nothing; k == 0 yields the
// empty subset once.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 || k < 0 || k > n {
			return
		}
		gen := combin.NewCombinationGenerator(n, k)
		buf := make([]int, k)
		for gen.Next() {
			if !yield(gen.Combination(buf)) {
				return
			}
		}
	}
}

// Powerset yields every subset of items, ascending by size and then in
// lexicographic order of positions within items. The empty subset is first
// and the full sequence is last.
func Powerset(items []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		buf := make([]int, 0, len(items))
		for size := 0; size <= len(items); size++ {
			for pos := range Combinations(len(items), size) {
				buf = buf[:size]
				for i, p := range pos {
					buf[i] = items[p]
				}
				if !yield(buf) {
					return
				}
			}
		}
	}
}

// Count returns C(n, k), or 0 when k < 0 or k > n.
func Count(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return combin.Binomial(n, k)
}

// Mask packs s into a bit mask. Members outside [0, 64) are ignored.
func Mask(s []int) uint64 {
	var m uint64
	for _, v := range s {
		if v >= 0 && v < 64 {
			m |= 1 << uint(v)
		}
	}
	return m
}

// Members unpacks m into an ascending index slice.
func Members(m uint64) []int {
	out := make([]int, 0, bits.OnesCount64(m))
	for ; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}
	return out
}

// IsValid reports whether s is ascending, duplicate-free and drawn from [0, n).
func IsValid(n int, s []int) bool {
	prev := -1
	for _, v := range s {
		if v <= prev || v >= n {
			return false
		}
		prev = v
	}
	return true
}
