package graph

import "fmt"

// Extend returns a new graph of order n+1 whose vertex n is adjacent exactly
// to nbrs. nbrs must be ascending, duplicate-free and drawn from [0, n).
//
// g is not modified. Neighbor lists of vertices outside nbrs are shared
// between g and the result; lists that gain vertex n are freshly allocated.
//
// Complexity: O(n + |nbrs|).
func (g *Graph) Extend(nbrs []int) (*Graph, error) {
	n := g.Order()
	if n+1 > MaxOrder {
		return nil, fmt.Errorf("Extend: order %d: %w", n+1, ErrOrderTooLarge)
	}
	var mask uint64
	prev := -1
	for _, v := range nbrs {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("Extend: neighbor %d: %w", v, ErrVertexRange)
		}
		if v <= prev {
			return nil, fmt.Errorf("Extend: neighbor %d after %d: %w", v, prev, ErrDuplicateNeighbor)
		}
		prev = v
		mask |= bit(v)
	}

	rows := make([]uint64, n+1)
	copy(rows, g.rows)
	rows[n] = mask
	adj := make([][]int, n+1)
	copy(adj, g.adj)
	for _, v := range nbrs {
		rows[v] |= bit(n)
		old := g.adj[v]
		// full slice expression forces a copy so g.adj[v] is never appended into
		adj[v] = append(old[:len(old):len(old)], n)
	}
	adj[n] = append(make([]int, 0, len(nbrs)), nbrs...)

	return &Graph{adj: adj, rows: rows}, nil
}

// Complement returns the complement graph: u~v in the result iff u≠v and
// u≁v in g.
func (g *Graph) Complement() *Graph {
	n := g.Order()
	full := fullMask(n)
	rows := make([]uint64, n)
	for v, r := range g.rows {
		rows[v] = ^r & full &^ bit(v)
	}
	return fromRows(rows)
}

// Induced returns the subgraph induced by s, relabelled so that s[i]
// becomes vertex i. s must be duplicate-free and in range.
func (g *Graph) Induced(s []int) (*Graph, error) {
	n := g.Order()
	var seen uint64
	for _, v := range s {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("Induced: vertex %d: %w", v, ErrVertexRange)
		}
		if seen&bit(v) != 0 {
			return nil, fmt.Errorf("Induced: vertex %d: %w", v, ErrDuplicateNeighbor)
		}
		seen |= bit(v)
	}
	rows := make([]uint64, len(s))
	for i, u := range s {
		for j, w := range s {
			if g.rows[u]&bit(w) != 0 {
				rows[i] |= bit(j)
			}
		}
	}
	return fromRows(rows), nil
}

// Permute relabels g: vertex v of g becomes vertex perm[v] of the result.
func (g *Graph) Permute(perm []int) (*Graph, error) {
	n := g.Order()
	if len(perm) != n {
		return nil, fmt.Errorf("Permute: len=%d, order=%d: %w", len(perm), n, ErrBadPermutation)
	}
	var seen uint64
	for _, p := range perm {
		if p < 0 || p >= n || seen&bit(p) != 0 {
			return nil, fmt.Errorf("Permute: %v: %w", perm, ErrBadPermutation)
		}
		seen |= bit(p)
	}
	rows := make([]uint64, n)
	for u, nbrs := range g.adj {
		for _, w := range nbrs {
			rows[perm[u]] |= bit(perm[w])
		}
	}
	return fromRows(rows), nil
}
