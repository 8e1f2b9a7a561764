package graph

import "fmt"

// Builder accumulates vertices and edges and snapshots them into an
// immutable Graph. A Builder is not safe for concurrent use.
type Builder struct {
	rows []uint64
}

// NewBuilder returns a Builder holding n isolated vertices.
func NewBuilder(n int) (*Builder, error) {
	if err := checkOrder(n); err != nil {
		return nil, fmt.Errorf("NewBuilder: n=%d: %w", n, err)
	}
	return &Builder{rows: make([]uint64, n)}, nil
}

// Order returns the current number of vertices.
func (b *Builder) Order() int { return len(b.rows) }

// AddVertex appends an isolated vertex and returns its index.
func (b *Builder) AddVertex() (int, error) {
	if len(b.rows) >= MaxOrder {
		return -1, fmt.Errorf("AddVertex: %w", ErrOrderTooLarge)
	}
	b.rows = append(b.rows, 0)
	return len(b.rows) - 1, nil
}

// AddEdge joins u and v. Adding an existing edge is a no-op.
func (b *Builder) AddEdge(u, v int) error {
	n := len(b.rows)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d,%d): order %d: %w", u, v, n, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	b.rows[u] |= bit(v)
	b.rows[v] |= bit(u)
	return nil
}

// HasEdge reports whether u~v in the builder's current state.
func (b *Builder) HasEdge(u, v int) bool {
	if u < 0 || u >= len(b.rows) || v < 0 || v >= len(b.rows) {
		return false
	}
	return b.rows[u]&bit(v) != 0
}

// Build snapshots the current state. The Builder stays usable and later
// changes do not affect graphs already built.
func (b *Builder) Build() *Graph {
	rows := make([]uint64, len(b.rows))
	copy(rows, b.rows)
	return fromRows(rows)
}
