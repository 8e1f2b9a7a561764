// Package fset answers the f-set question: does a graph contain a vertex
// subset of a given size on which a predicate holds?
//
// Exists scans all b-subsets in lexicographic order. ExistsWithVertex is the
// incremental form used by level-by-level search: it only looks at subsets
// containing the newest vertex (order-1), which is sufficient when the graph
// without that vertex is already known to contain no such subset.
//
// Predicates are consumed through the one-method Predicate interface, so any
// value with an Eval method (or a plain function wrapped in Func) works.
package fset

import (
	"slices"

	"github.com/katalvlaran/genramsey/graph"
	"github.com/katalvlaran/genramsey/subset"
)

// Predicate decides a property of the subgraph of g induced by s.
// Implementations must not retain s.
type Predicate interface {
	Eval(g *graph.Graph, s []int) bool
}

// Func adapts an ordinary function to Predicate.
type Func func(g *graph.Graph, s []int) bool

// Eval calls f(g, s).
func (f Func) Eval(g *graph.Graph, s []int) bool { return f(g, s) }

// Exists reports whether some b-subset of g's vertices satisfies p.
// It is false when b < 0 or b > g.Order(); the empty subset (b == 0)
// is tested like any other.
func Exists(p Predicate, b int, g *graph.Graph) bool {
	_, ok := find(p, b, g, false)
	return ok
}

// ExistsWithVertex reports whether some b-subset containing vertex
// g.Order()-1 satisfies p. It is false when b < 1 or b > g.Order().
func ExistsWithVertex(p Predicate, b int, g *graph.Graph) bool {
	_, ok := find(p, b, g, true)
	return ok
}

// Find returns the lexicographically first b-subset satisfying p.
func Find(p Predicate, b int, g *graph.Graph) ([]int, bool) {
	s, ok := find(p, b, g, false)
	return slices.Clone(s), ok
}

// FindWithVertex returns the first b-subset containing the last vertex that
// satisfies p. The last vertex is the final element of the result.
func FindWithVertex(p Predicate, b int, g *graph.Graph) ([]int, bool) {
	s, ok := find(p, b, g, true)
	return slices.Clone(s), ok
}

// Count returns the number of b-subsets satisfying p.
func Count(p Predicate, b int, g *graph.Graph) int {
	total := 0
	for s := range subset.Combinations(g.Order(), b) {
		if p.Eval(g, s) {
			total++
		}
	}
	return total
}

// find is the shared scan. The returned slice aliases a scratch buffer.
func find(p Predicate, b int, g *graph.Graph, withLast bool) ([]int, bool) {
	n := g.Order()
	if !withLast {
		if b < 0 || b > n {
			return nil, false
		}
		for s := range subset.Combinations(n, b) {
			if p.Eval(g, s) {
				return s, true
			}
		}
		return nil, false
	}

	if b < 1 || b > n {
		return nil, false
	}
	buf := make([]int, b)
	buf[b-1] = n - 1
	for s := range subset.Combinations(n-1, b-1) {
		copy(buf, s)
		if p.Eval(g, buf) {
			return buf, true
		}
	}
	return nil, false
}
