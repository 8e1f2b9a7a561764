package isograph

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/genramsey/graph"
)

// Gonum copies g into a gonum undirected graph with node IDs 0..n-1.
func Gonum(g *graph.Graph) *simple.UndirectedGraph {
	h := simple.NewUndirectedGraph()
	for v := 0; v < g.Order(); v++ {
		h.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		h.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return h
}

// Graph6 returns the graph6 encoding of g under its current labelling.
func Graph6(g *graph.Graph) string {
	return string(graph6.Encode(Gonum(g)))
}

// FromGraph6 decodes a graph6 string.
func FromGraph6(s string) (*graph.Graph, error) {
	g6 := graph6.Graph(s)
	if s == "" || !graph6.IsValid(g6) {
		return nil, fmt.Errorf("FromGraph6(%q): %w", s, ErrBadGraph6)
	}
	n := g6.Nodes().Len()
	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("FromGraph6(%q): %w", s, err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g6.HasEdgeBetween(int64(u), int64(v)) {
				_ = b.AddEdge(u, v)
			}
		}
	}
	return b.Build(), nil
}

// DOT renders g in the DOT language as an undirected graph called name.
// Vertices are numbered from 1. Every vertex gets its own statement, then
// each edge follows as "u -- v;".
func DOT(g *graph.Graph, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph %s {\n", name)
	for v := 1; v <= g.Order(); v++ {
		fmt.Fprintf(&sb, "    %d;\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "    %d -- %d;\n", e[0]+1, e[1]+1)
	}
	sb.WriteString("}")
	return sb.String()
}
