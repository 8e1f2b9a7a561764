package isograph_test

import (
	"fmt"

	"github.com/katalvlaran/genramsey/graph"
	"github.com/katalvlaran/genramsey/isograph"
)

func ExampleDedupe() {
	seq, _ := isograph.AllGraphs(3)
	var all []*graph.Graph
	for g := range seq {
		all = append(all, g)
	}
	fmt.Println(len(all), "labelled,", len(isograph.Dedupe(all)), "up to isomorphism")
	// Output: 8 labelled, 4 up to isomorphism
}

func ExampleDOT() {
	g, _ := graph.FromEdges(2, [][2]int{{0, 1}})
	fmt.Println(isograph.DOT(g, "k2"))
	// Output:
	// graph k2 {
	//     1;
	//     2;
	//     1 -- 2;
	// }
}
