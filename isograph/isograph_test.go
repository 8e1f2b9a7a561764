package isograph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genramsey/builder"
	"github.com/katalvlaran/genramsey/graph"
	"github.com/katalvlaran/genramsey/isograph"
)

func c5(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.FromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.NoError(t, err)
	return g
}

// randomGraph returns a G(n, p) graph seeded from rng.
func randomGraph(rng *rand.Rand, n int, p float64) *graph.Graph {
	if n == 0 {
		return builder.MustBuild(nil, builder.Empty(0))
	}
	return builder.MustBuild([]builder.BuilderOption{builder.WithSeed(rng.Int63())}, builder.RandomSparse(n, p))
}

// permutations calls fn with every permutation of [0, n).
func permutations(n int, fn func([]int) bool) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var rec func(int) bool
	rec = func(i int) bool {
		if i == n {
			return fn(perm)
		}
		for j := i; j < n; j++ {
			perm[i], perm[j] = perm[j], perm[i]
			if !rec(i + 1) {
				return false
			}
			perm[i], perm[j] = perm[j], perm[i]
		}
		return true
	}
	rec(0)
}

func bruteIsomorphic(g, h *graph.Graph) bool {
	if g.Order() != h.Order() {
		return false
	}
	found := false
	permutations(g.Order(), func(p []int) bool {
		pg, _ := g.Permute(p)
		if pg.Equal(h) {
			found = true
			return false
		}
		return true
	})
	return found
}

func TestCanonical_InvariantUnderRelabelling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(11)
		g := randomGraph(rng, n, rng.Float64())
		h, err := g.Permute(rng.Perm(n))
		require.NoError(t, err)
		require.True(t, isograph.Canonical(g).Equal(isograph.Canonical(h)), "trial %d: %v vs %v", trial, g, h)
		require.Equal(t, isograph.Key(g), isograph.Key(h))
		require.True(t, isograph.Isomorphic(g, h))
	}
}

func TestIsomorphic_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 300; trial++ {
		n := 1 + rng.Intn(6)
		g := randomGraph(rng, n, 0.5)
		h := randomGraph(rng, n, 0.5)
		require.Equal(t, bruteIsomorphic(g, h), isograph.Isomorphic(g, h), "%v vs %v", g, h)
	}
}

func TestIsomorphic_RegularGraphs(t *testing.T) {
	// C6 and two disjoint triangles are both 2-regular on six vertices
	c6 := builder.MustBuild(nil, builder.Cycle(6))
	tt := builder.MustBuild(nil, builder.Cycle(3), builder.Cycle(3))
	assert.False(t, isograph.Isomorphic(c6, tt))
	assert.NotEqual(t, isograph.Key(c6), isograph.Key(tt))

	// K3,3 and the triangular prism are both 3-regular on six vertices
	k33 := builder.MustBuild(nil, builder.CompleteBipartite(3, 3))
	prism := builder.MustBuild(nil, builder.Cycle(3), builder.Cycle(3))
	pb, err := graph.NewBuilder(6)
	require.NoError(t, err)
	for _, e := range append(prism.Edges(), [2]int{0, 3}, [2]int{1, 4}, [2]int{2, 5}) {
		require.NoError(t, pb.AddEdge(e[0], e[1]))
	}
	prism = pb.Build()
	assert.Equal(t, k33.DegreeSequence(), prism.DegreeSequence())
	assert.False(t, isograph.Isomorphic(k33, prism))

	// moving the hub of a wheel to the end keeps the same wheel
	w5 := builder.MustBuild(nil, builder.Wheel(5))
	hubLast, err := w5.Permute([]int{4, 0, 1, 2, 3})
	require.NoError(t, err)
	assert.True(t, isograph.Isomorphic(w5, hubLast))
	assert.False(t, isograph.Isomorphic(w5, builder.MustBuild(nil, builder.Star(5))))

	// C5 is self-complementary
	g := c5(t)
	assert.True(t, isograph.Isomorphic(g, g.Complement()))
}

func TestCanonical_Symmetric(t *testing.T) {
	for _, n := range []int{0, 1, 12, 20} {
		empty := builder.MustBuild(nil, builder.Empty(n))
		assert.True(t, isograph.Canonical(empty).Equal(empty))
		full := empty.Complement()
		assert.True(t, isograph.Canonical(full).Equal(full))
	}

	// graphs with large automorphism groups, relabelled by reversal
	tests := []struct {
		name string
		cons builder.Constructor
	}{
		{"Cycle12", builder.Cycle(12)},
		{"Path9", builder.Path(9)},
		{"Star10", builder.Star(10)},
		{"Wheel8", builder.Wheel(8)},
		{"K4_4", builder.CompleteBipartite(4, 4)},
		{"K2_5", builder.CompleteBipartite(2, 5)},
		{"K5", builder.Complete(5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := builder.MustBuild(nil, tc.cons)
			n := g.Order()
			rev := make([]int, n)
			for i := range rev {
				rev[i] = n - 1 - i
			}
			h, err := g.Permute(rev)
			require.NoError(t, err)
			assert.True(t, isograph.Canonical(g).Equal(isograph.Canonical(h)))
			assert.Equal(t, isograph.Key(g), isograph.Key(h))
			assert.True(t, isograph.Isomorphic(g, h))
		})
	}
}

func TestAllGraphsAndDedupe_ClassCounts(t *testing.T) {
	// numbers of unlabelled graphs on n vertices
	want := []int{1, 1, 2, 4, 11, 34, 156}
	labelled := []int{1, 1, 2, 8, 64, 1024, 32768}
	for n, w := range want {
		if n == 6 && testing.Short() {
			t.Skip("order 6 enumerates 32768 graphs")
		}
		seq, err := isograph.AllGraphs(n)
		require.NoError(t, err)
		var all []*graph.Graph
		for g := range seq {
			require.Equal(t, n, g.Order())
			all = append(all, g)
		}
		require.Len(t, all, labelled[n])
		assert.Len(t, isograph.Dedupe(all), w, "order %d", n)
	}
}

func TestAllGraphs_Errors(t *testing.T) {
	_, err := isograph.AllGraphs(-1)
	assert.ErrorIs(t, err, isograph.ErrNegativeOrder)
	_, err = isograph.AllGraphs(isograph.MaxEnumerateOrder + 1)
	assert.ErrorIs(t, err, isograph.ErrOrderTooLarge)

	seq, err := isograph.AllGraphs(3)
	require.NoError(t, err)
	for g := range seq {
		assert.Equal(t, 0, g.EdgeCount(), "edgeless graph comes first")
		break
	}
}

func TestDedupe_KeepsFirstInOrder(t *testing.T) {
	p3a := graph.MustFromAdjacency([][]int{{1}, {0, 2}, {1}})
	k2k1 := graph.MustFromAdjacency([][]int{{1}, {0}, {}})
	p3b := graph.MustFromAdjacency([][]int{{2}, {2}, {0, 1}})
	k1k2 := graph.MustFromAdjacency([][]int{{}, {2}, {1}})

	out := isograph.Dedupe([]*graph.Graph{p3a, k2k1, p3b, k1k2})
	require.Len(t, out, 2)
	assert.Same(t, p3a, out[0])
	assert.Same(t, k2k1, out[1])

	assert.Empty(t, isograph.Dedupe(nil))
}

func TestDeduper(t *testing.T) {
	d := isograph.NewDeduper()
	g := c5(t)
	assert.True(t, d.TryAdd(g))
	assert.False(t, d.TryAdd(g.Complement()))
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, []string{isograph.Key(g)}, d.Keys())
	assert.Equal(t, []*graph.Graph{g}, d.Graphs())
}

func TestGraph6(t *testing.T) {
	g := c5(t)
	assert.Equal(t, "Dhc", isograph.Graph6(g))

	k2 := graph.MustFromAdjacency([][]int{{1}, {0}})
	assert.Equal(t, "A_", isograph.Graph6(k2))

	empty, _ := graph.New(0)
	assert.Equal(t, "?", isograph.Graph6(empty))

	back, err := isograph.FromGraph6("Dhc")
	require.NoError(t, err)
	assert.True(t, back.Equal(g))

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		h := randomGraph(rng, rng.Intn(64)+1, 0.3)
		back, err := isograph.FromGraph6(isograph.Graph6(h))
		require.NoError(t, err)
		require.True(t, back.Equal(h))
	}
}

func TestFromGraph6_Errors(t *testing.T) {
	for _, s := range []string{"", "D", "Dhcc", "D\x01c"} {
		_, err := isograph.FromGraph6(s)
		assert.ErrorIs(t, err, isograph.ErrBadGraph6, "%q", s)
	}
}

func TestDOT(t *testing.T) {
	k1, _ := graph.New(1)
	assert.Equal(t, "graph rs1_2_2e1 {\n    1;\n}", isograph.DOT(k1, "rs1_2_2e1"))

	p3 := graph.MustFromAdjacency([][]int{{1}, {0, 2}, {1}})
	want := "graph g {\n    1;\n    2;\n    3;\n    1 -- 2;\n    2 -- 3;\n}"
	assert.Equal(t, want, isograph.DOT(p3, "g"))
}

func TestService(t *testing.T) {
	seq, err := isograph.Default.AllGraphs(2)
	require.NoError(t, err)
	var gs []*graph.Graph
	for g := range seq {
		gs = append(gs, g)
	}
	assert.Len(t, isograph.Default.Dedupe(append(gs, gs...)), 2)
}
