package graph

import "errors"

// MaxOrder is the largest supported graph order.
const MaxOrder = 64

// Sentinel errors for graph construction and transformation.
var (
	// ErrNegativeOrder is returned when a negative vertex count is requested.
	ErrNegativeOrder = errors.New("graph: negative order")

	// ErrOrderTooLarge is returned when an operation would exceed MaxOrder.
	ErrOrderTooLarge = errors.New("graph: order exceeds MaxOrder")

	// ErrVertexRange indicates a vertex index outside [0, n).
	ErrVertexRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates a vertex listed as its own neighbor.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrAsymmetric indicates u lists v but v does not list u.
	ErrAsymmetric = errors.New("graph: adjacency is not symmetric")

	// ErrDuplicateNeighbor indicates a neighbor listed twice.
	ErrDuplicateNeighbor = errors.New("graph: duplicate neighbor")

	// ErrBadPermutation indicates a relabelling that is not a bijection on [0, n).
	ErrBadPermutation = errors.New("graph: not a permutation")
)

// Graph is an immutable simple undirected graph on the vertex set [0, n).
//
// The zero value is the order-0 graph.
type Graph struct {
	adj  [][]int  // ascending neighbor lists
	rows []uint64 // rows[v] has bit u set iff u~v
}

func bit(v int) uint64 { return uint64(1) << uint(v) }

// fullMask returns the mask of [0, n).
func fullMask(n int) uint64 {
	if n >= MaxOrder {
		return ^uint64(0)
	}
	return bit(n) - 1
}

func checkOrder(n int) error {
	if n < 0 {
		return ErrNegativeOrder
	}
	if n > MaxOrder {
		return ErrOrderTooLarge
	}
	return nil
}
