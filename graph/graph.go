package graph

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// New returns the edgeless graph of order n.
func New(n int) (*Graph, error) {
	if err := checkOrder(n); err != nil {
		return nil, fmt.Errorf("New: n=%d: %w", n, err)
	}
	return fromRows(make([]uint64, n)), nil
}

// FromAdjacency builds a Graph from per-vertex neighbor lists.
// The lists are copied and sorted; the input is never retained.
//
// Errors: ErrOrderTooLarge, ErrVertexRange, ErrSelfLoop, ErrDuplicateNeighbor,
// ErrAsymmetric (wrapped with the offending vertex pair).
func FromAdjacency(adj [][]int) (*Graph, error) {
	n := len(adj)
	if err := checkOrder(n); err != nil {
		return nil, fmt.Errorf("FromAdjacency: n=%d: %w", n, err)
	}
	rows := make([]uint64, n)
	for v, nbrs := range adj {
		for _, u := range nbrs {
			switch {
			case u < 0 || u >= n:
				return nil, fmt.Errorf("FromAdjacency: %d lists %d: %w", v, u, ErrVertexRange)
			case u == v:
				return nil, fmt.Errorf("FromAdjacency: vertex %d: %w", v, ErrSelfLoop)
			case rows[v]&bit(u) != 0:
				return nil, fmt.Errorf("FromAdjacency: %d lists %d twice: %w", v, u, ErrDuplicateNeighbor)
			}
			rows[v] |= bit(u)
		}
	}
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			if rows[v]&bit(u) != 0 && rows[u]&bit(v) == 0 {
				return nil, fmt.Errorf("FromAdjacency: %d~%d but not %d~%d: %w", v, u, u, v, ErrAsymmetric)
			}
		}
	}
	return fromRows(rows), nil
}

// MustFromAdjacency is FromAdjacency for fixtures; it panics on error.
func MustFromAdjacency(adj [][]int) *Graph {
	g, err := FromAdjacency(adj)
	if err != nil {
		panic(err)
	}
	return g
}

// FromEdges builds an order-n Graph from an edge list. Repeated edges are
// collapsed; orientation is irrelevant.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	b, err := NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("FromEdges: %w", err)
	}
	for _, e := range edges {
		if err = b.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}
	return b.Build(), nil
}

// fromRows derives neighbor lists from bit rows. rows is owned by the result.
func fromRows(rows []uint64) *Graph {
	adj := make([][]int, len(rows))
	for v, r := range rows {
		nbrs := make([]int, 0, bits.OnesCount64(r))
		for ; r != 0; r &= r - 1 {
			nbrs = append(nbrs, bits.TrailingZeros64(r))
		}
		adj[v] = nbrs
	}
	return &Graph{adj: adj, rows: rows}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Neighbors returns the ascending neighbor list of v. The slice is shared
// with g and must not be modified.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// NeighborMask returns the neighbor set of v as a bit mask.
func (g *Graph) NeighborMask(v int) uint64 { return g.rows[v] }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// HasEdge reports whether u and v are adjacent. Out-of-range vertices are
// never adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.rows) || v < 0 || v >= len(g.rows) {
		return false
	}
	return g.rows[u]&bit(v) != 0
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// Edges returns every edge {u, v} with u < v in lexicographic order.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}

// Adjacency returns a deep copy of the neighbor lists.
func (g *Graph) Adjacency() [][]int {
	out := make([][]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = append([]int(nil), nbrs...)
	}
	return out
}

// DegreeSequence returns the vertex degrees sorted in non-increasing order.
func (g *Graph) DegreeSequence() []int {
	seq := make([]int, len(g.adj))
	for v, nbrs := range g.adj {
		seq[v] = len(nbrs)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(seq)))
	return seq
}

// Equal reports labelled equality: same order and same edge set.
func (g *Graph) Equal(h *Graph) bool {
	if g.Order() != h.Order() {
		return false
	}
	for v, r := range g.rows {
		if h.rows[v] != r {
			return false
		}
	}
	return true
}

// String renders the graph as its order and adjacency lists.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph(order=%d)", g.Order())
	for v, nbrs := range g.adj {
		fmt.Fprintf(&sb, " %d:%v", v, nbrs)
	}
	return sb.String()
}
