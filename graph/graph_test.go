package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genramsey/graph"
)

// c5 is the 5-cycle 0-1-2-3-4-0.
func c5(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.FromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.NoError(t, err)
	return g
}

func TestNew_Bounds(t *testing.T) {
	g, err := graph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Empty(t, g.Edges())

	g, err = graph.New(graph.MaxOrder)
	require.NoError(t, err)
	assert.Equal(t, graph.MaxOrder, g.Order())

	_, err = graph.New(-1)
	assert.ErrorIs(t, err, graph.ErrNegativeOrder)
	_, err = graph.New(graph.MaxOrder + 1)
	assert.ErrorIs(t, err, graph.ErrOrderTooLarge)
}

func TestZeroValueIsEmptyGraph(t *testing.T) {
	var g graph.Graph
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.EdgeCount())
	ext, err := g.Extend(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, ext.Order())
}

func TestFromAdjacency_Validation(t *testing.T) {
	tests := []struct {
		name string
		adj  [][]int
		want error
	}{
		{"range", [][]int{{1}, {0, 2}}, graph.ErrVertexRange},
		{"negative", [][]int{{-1}, {}}, graph.ErrVertexRange},
		{"loop", [][]int{{0}}, graph.ErrSelfLoop},
		{"duplicate", [][]int{{1, 1}, {0}}, graph.ErrDuplicateNeighbor},
		{"asymmetric", [][]int{{1}, {}}, graph.ErrAsymmetric},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.FromAdjacency(tc.adj)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromAdjacency_SortsAndCopies(t *testing.T) {
	adj := [][]int{{2, 1}, {0}, {0}}
	g, err := graph.FromAdjacency(adj)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))

	adj[0][0] = 1 // caller's slice is not retained
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(0, 7))
}

func TestEdgesAndDegrees(t *testing.T) {
	g := c5(t)
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, [][2]int{{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4}}, g.Edges())
	assert.Equal(t, []int{2, 2, 2, 2, 2}, g.DegreeSequence())
	assert.Equal(t, uint64(0b10010), g.NeighborMask(0))
	assert.Equal(t, [][]int{{1, 4}, {0, 2}, {1, 3}, {2, 4}, {0, 3}}, g.Adjacency())
}

func TestExtend_DoesNotMutateReceiver(t *testing.T) {
	parent := graph.MustFromAdjacency([][]int{{1}, {0}, {}})
	before := parent.Adjacency()

	child, err := parent.Extend([]int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 4, child.Order())
	assert.Equal(t, [][]int{{1, 3}, {0}, {3}, {0, 2}}, child.Adjacency())

	// a sibling built from the same parent must not see the first child's edges
	sibling, err := parent.Extend([]int{0})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3}, {0}, {}, {0}}, sibling.Adjacency())
	assert.Equal(t, before, parent.Adjacency())
	assert.Equal(t, [][]int{{1, 3}, {0}, {3}, {0, 2}}, child.Adjacency())
}

func TestExtend_Validation(t *testing.T) {
	g := c5(t)
	_, err := g.Extend([]int{5})
	assert.ErrorIs(t, err, graph.ErrVertexRange)
	_, err = g.Extend([]int{2, 1})
	assert.ErrorIs(t, err, graph.ErrDuplicateNeighbor)
	_, err = g.Extend([]int{1, 1})
	assert.ErrorIs(t, err, graph.ErrDuplicateNeighbor)

	big, err := graph.New(graph.MaxOrder)
	require.NoError(t, err)
	_, err = big.Extend(nil)
	assert.ErrorIs(t, err, graph.ErrOrderTooLarge)
}

func TestComplement(t *testing.T) {
	g := c5(t)
	cg := g.Complement()
	// the complement of C5 is again a 5-cycle: 0-2-4-1-3-0
	assert.Equal(t, [][]int{{2, 3}, {3, 4}, {0, 4}, {0, 1}, {1, 2}}, cg.Adjacency())
	assert.True(t, cg.Complement().Equal(g))
}

func TestInduced(t *testing.T) {
	g := c5(t)
	h, err := g.Induced([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, h.Edges())

	h, err = g.Induced([]int{4, 0})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}}, h.Edges())

	_, err = g.Induced([]int{1, 1})
	assert.ErrorIs(t, err, graph.ErrDuplicateNeighbor)
	_, err = g.Induced([]int{9})
	assert.ErrorIs(t, err, graph.ErrVertexRange)
}

func TestPermute(t *testing.T) {
	p3 := graph.MustFromAdjacency([][]int{{1}, {0, 2}, {1}})
	h, err := p3.Permute([]int{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, h.Edges())

	_, err = p3.Permute([]int{0, 0, 1})
	assert.ErrorIs(t, err, graph.ErrBadPermutation)
	_, err = p3.Permute([]int{0, 1})
	assert.ErrorIs(t, err, graph.ErrBadPermutation)
}

func TestBuilder(t *testing.T) {
	b, err := graph.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 0)) // idempotent
	snap := b.Build()

	v, err := b.AddVertex()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, b.AddEdge(1, 2))
	assert.True(t, b.HasEdge(2, 1))

	assert.Equal(t, 1, snap.EdgeCount(), "snapshot is unaffected by later edits")
	assert.Equal(t, 2, b.Build().EdgeCount())

	assert.ErrorIs(t, b.AddEdge(0, 0), graph.ErrSelfLoop)
	assert.ErrorIs(t, b.AddEdge(0, 3), graph.ErrVertexRange)
}

func TestString(t *testing.T) {
	g := graph.MustFromAdjacency([][]int{{1}, {0}})
	assert.Equal(t, "graph(order=2) 0:[1] 1:[0]", g.String())
}
