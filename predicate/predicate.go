package predicate

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/katalvlaran/genramsey/graph"
)

// Divided returns the predicate "every component of the induced subgraph
// has at most k vertices". Panics if k < 1.
func Divided(k int) Predicate { return mustNew(KindDivided, k) }

// DividedComplement is Divided evaluated on the complement graph.
// Panics if k < 1.
func DividedComplement(k int) Predicate { return mustNew(KindDividedComplement, k) }

// Sparse returns the predicate "every vertex has at most k neighbors in the
// subset". Panics if k < 0.
func Sparse(k int) Predicate { return mustNew(KindSparse, k) }

// SparseComplement is Sparse evaluated on the complement graph.
// Panics if k < 0.
func SparseComplement(k int) Predicate { return mustNew(KindSparseComplement, k) }

// Independent holds when no two subset vertices are adjacent.
func Independent() Predicate { return Predicate{kind: KindIndependent} }

// Clique holds when every two subset vertices are adjacent.
func Clique() Predicate { return Predicate{kind: KindClique} }

// New builds a predicate of the given kind. k is ignored for independent
// and clique.
func New(kind Kind, k int) (Predicate, error) {
	switch {
	case kind == KindIndependent || kind == KindClique:
		return Predicate{kind: kind}, nil
	case !kind.parameterised():
		return Predicate{}, fmt.Errorf("New: %v: %w", kind, ErrUnknownKind)
	case k < kind.minK():
		return Predicate{}, fmt.Errorf("New: %v(%d): k < %d: %w", kind, k, kind.minK(), ErrShape)
	}
	return Predicate{kind: kind, k: k}, nil
}

func mustNew(kind Kind, k int) Predicate {
	p, err := New(kind, k)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports ErrInvalidPredicate for the zero value or for a value
// whose k lies outside its kind's domain.
func (p Predicate) Validate() error {
	if p.kind == kindInvalid || int(p.kind) >= len(kindNames) {
		return ErrInvalidPredicate
	}
	if p.kind.parameterised() && p.k < p.kind.minK() {
		return fmt.Errorf("%v(%d): %w", p.kind, p.k, ErrInvalidPredicate)
	}
	return nil
}

// Dual returns the same property measured in the complement graph:
// divided and divided-complement swap, sparse and sparse-complement swap,
// independent and clique swap.
func (p Predicate) Dual() Predicate {
	switch p.kind {
	case KindDivided:
		p.kind = KindDividedComplement
	case KindDividedComplement:
		p.kind = KindDivided
	case KindSparse:
		p.kind = KindSparseComplement
	case KindSparseComplement:
		p.kind = KindSparse
	case KindIndependent:
		p.kind = KindClique
	case KindClique:
		p.kind = KindIndependent
	}
	return p
}

// String renders the predicate in the form accepted by Parse,
// e.g. "divided(2)" or "clique".
func (p Predicate) String() string {
	if p.kind.parameterised() {
		return p.kind.String() + "(" + strconv.Itoa(p.k) + ")"
	}
	return p.kind.String()
}

// Eval reports whether the subgraph of g induced by s has the property.
// s must be a duplicate-free set of vertices of g; order is irrelevant.
// The empty subset satisfies every predicate. A zero Predicate is false.
//
// Complexity: O(|s|) mask operations for independent, clique and the sparse
// kinds; O(|s|·popcount) for the divided kinds, usually less because the
// component walk aborts at the first component larger than k.
func (p Predicate) Eval(g *graph.Graph, s []int) bool {
	var set uint64
	for _, v := range s {
		set |= 1 << uint(v)
	}
	switch p.kind {
	case KindDivided:
		return divided(g, s, set, p.k, false)
	case KindDividedComplement:
		return divided(g, s, set, p.k, true)
	case KindSparse:
		return sparse(g, s, set, p.k, false)
	case KindSparseComplement:
		return sparse(g, s, set, p.k, true)
	case KindIndependent:
		for _, v := range s {
			if g.NeighborMask(v)&set != 0 {
				return false
			}
		}
		return true
	case KindClique:
		for _, v := range s {
			if set&^(1<<uint(v))&^g.NeighborMask(v) != 0 {
				return false
			}
		}
		return true
	}
	return false
}

// divided walks the components of the induced subgraph (or of its
// complement when comp is set) and fails as soon as one exceeds k vertices.
func divided(g *graph.Graph, s []int, set uint64, k int, comp bool) bool {
	var (
		pushed uint64
		stack  [graph.MaxOrder]int
	)
	for _, root := range s {
		if pushed&(1<<uint(root)) != 0 {
			continue
		}
		pushed |= 1 << uint(root)
		stack[0] = root
		top, size := 1, 1
		for top > 0 {
			top--
			x := stack[top]
			next := g.NeighborMask(x)
			if comp {
				next = ^next &^ (1 << uint(x))
			}
			next &= set &^ pushed
			for ; next != 0; next &= next - 1 {
				if size >= k {
					return false
				}
				y := bits.TrailingZeros64(next)
				pushed |= 1 << uint(y)
				stack[top] = y
				top++
				size++
			}
		}
	}
	return true
}

// sparse checks the induced degree (or non-degree) of every subset vertex.
func sparse(g *graph.Graph, s []int, set uint64, k int, comp bool) bool {
	for _, v := range s {
		row := g.NeighborMask(v)
		if comp {
			row = ^row &^ (1 << uint(v))
		}
		if bits.OnesCount64(row&set) > k {
			return false
		}
	}
	return true
}
