package isograph

import (
	"math/bits"
	"slices"

	"github.com/katalvlaran/genramsey/graph"
)

// partition is an ordered list of vertex cells.
type partition [][]int

func (p partition) discrete(n int) bool { return len(p) == n }

// refine splits cells until every vertex of a cell has the same number of
// neighbors in each cell. Split order depends only on the count vectors, so
// the result commutes with relabelling.
func refine(g *graph.Graph, p partition) partition {
	for {
		masks := make([]uint64, len(p))
		for i, c := range p {
			for _, v := range c {
				masks[i] |= 1 << uint(v)
			}
		}
		sig := func(v int) []int {
			row := g.NeighborMask(v)
			out := make([]int, len(masks))
			for i, m := range masks {
				out[i] = bits.OnesCount64(row & m)
			}
			return out
		}

		next := make(partition, 0, len(p))
		for _, c := range p {
			if len(c) == 1 {
				next = append(next, c)
				continue
			}
			sigs := make(map[int][]int, len(c))
			for _, v := range c {
				sigs[v] = sig(v)
			}
			sorted := slices.Clone(c)
			slices.SortStableFunc(sorted, func(a, b int) int {
				return slices.Compare(sigs[a], sigs[b])
			})
			start := 0
			for i := 1; i <= len(sorted); i++ {
				if i == len(sorted) || slices.Compare(sigs[sorted[i]], sigs[sorted[start]]) != 0 {
					next = append(next, sorted[start:i])
					start = i
				}
			}
		}
		if len(next) == len(p) {
			return next
		}
		p = next
	}
}

// individualize moves v out of cell i into a singleton placed just before
// the remainder of the cell.
func individualize(p partition, i, v int) partition {
	out := make(partition, 0, len(p)+1)
	out = append(out, p[:i]...)
	rest := make([]int, 0, len(p[i])-1)
	for _, u := range p[i] {
		if u != v {
			rest = append(rest, u)
		}
	}
	out = append(out, []int{v}, rest)
	out = append(out, p[i+1:]...)
	return out
}

// canonizer holds the best leaf found so far.
type canonizer struct {
	g    *graph.Graph
	best []uint64
	perm []int
}

func (c *canonizer) search(p partition) {
	n := c.g.Order()
	p = refine(c.g, p)
	if p.discrete(n) {
		c.leaf(p)
		return
	}
	target := 0
	for len(p[target]) == 1 {
		target++
	}
	var tried []int
	for _, v := range p[target] {
		if c.twinOfAny(v, tried) {
			continue
		}
		tried = append(tried, v)
		c.search(individualize(p, target, v))
	}
}

func (c *canonizer) twinOfAny(v int, tried []int) bool {
	rv := c.g.NeighborMask(v)
	for _, u := range tried {
		ru := c.g.NeighborMask(u)
		if rv&^(1<<uint(u)) == ru&^(1<<uint(v)) {
			return true
		}
	}
	return false
}

// leaf scores the labeling given by a discrete partition: vertex p[i][0]
// gets label i.
func (c *canonizer) leaf(p partition) {
	n := c.g.Order()
	perm := make([]int, n)
	for i, cell := range p {
		perm[cell[0]] = i
	}
	code := make([]uint64, n)
	for u := 0; u < n; u++ {
		for _, w := range c.g.Neighbors(u) {
			code[perm[u]] |= 1 << uint(perm[w])
		}
	}
	if c.best == nil || slices.Compare(code, c.best) > 0 {
		c.best, c.perm = code, perm
	}
}

// CanonicalLabeling returns a permutation perm such that g.Permute(perm) is
// the canonical representative of g's isomorphism class.
func CanonicalLabeling(g *graph.Graph) []int {
	n := g.Order()
	if n == 0 {
		return []int{}
	}
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	c := &canonizer{g: g}
	c.search(partition{all})
	return c.perm
}

// Canonical returns the canonical representative of g's isomorphism class.
// Isomorphic graphs have Equal canonical forms.
func Canonical(g *graph.Graph) *graph.Graph {
	h, err := g.Permute(CanonicalLabeling(g))
	if err != nil {
		// CanonicalLabeling always yields a permutation of [0, n)
		panic(err)
	}
	return h
}

// Key returns the graph6 string of g's canonical form.
func Key(g *graph.Graph) string {
	return Graph6(Canonical(g))
}

// Isomorphic reports whether g and h are isomorphic.
func Isomorphic(g, h *graph.Graph) bool {
	if g.Order() != h.Order() || g.EdgeCount() != h.EdgeCount() {
		return false
	}
	if !slices.Equal(g.DegreeSequence(), h.DegreeSequence()) {
		return false
	}
	return Canonical(g).Equal(Canonical(h))
}
