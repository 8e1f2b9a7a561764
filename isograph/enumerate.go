package isograph

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/genramsey/graph"
)

// MaxEnumerateOrder bounds AllGraphs; order 8 already has 2^28 labelled graphs.
const MaxEnumerateOrder = 8

// Sentinel errors.
var (
	// ErrOrderTooLarge is returned by AllGraphs above MaxEnumerateOrder.
	ErrOrderTooLarge = errors.New("isograph: order too large to enumerate")

	// ErrNegativeOrder is returned by AllGraphs for n < 0.
	ErrNegativeOrder = errors.New("isograph: negative order")

	// ErrBadGraph6 is returned by FromGraph6 for a malformed string.
	ErrBadGraph6 = errors.New("isograph: malformed graph6 string")
)

// AllGraphs yields every labelled simple graph on n vertices, one per edge
// subset of the complete graph. Edge slot i follows the lexicographic order
// of pairs u < v, and subsets are visited in increasing bit-mask order, so
// the edgeless graph comes first.
func AllGraphs(n int) (iter.Seq[*graph.Graph], error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("AllGraphs: n=%d: %w", n, ErrNegativeOrder)
	case n > MaxEnumerateOrder:
		return nil, fmt.Errorf("AllGraphs: n=%d > %d: %w", n, MaxEnumerateOrder, ErrOrderTooLarge)
	}
	pairs := make([][2]int, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			pairs = append(pairs, [2]int{u, v})
		}
	}
	total := uint64(1) << uint(len(pairs))
	return func(yield func(*graph.Graph) bool) {
		for mask := uint64(0); mask < total; mask++ {
			b, _ := graph.NewBuilder(n)
			for i, e := range pairs {
				if mask&(1<<uint(i)) != 0 {
					_ = b.AddEdge(e[0], e[1])
				}
			}
			if !yield(b.Build()) {
				return
			}
		}
	}, nil
}
