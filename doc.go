// Package genramsey computes generalized Ramsey numbers and their extremal
// graphs by level-by-level search over graphs up to isomorphism.
//
// 🚀 What is genramsey?
//
//	Given two induced-hereditary subset predicates f1, f2 and sizes b1, b2,
//	the generalized Ramsey number is the least n such that every graph of
//	order n has a b1-vertex set satisfying f1 or a b2-vertex set satisfying
//	f2. Graphs of smaller order with neither set are counterexamples; the
//	counterexamples of order n-1 are the extremal graphs.
//
// ✨ How does the search work?
//
//   - Order 0 starts from the empty graph.
//   - Each counterexample of order n is extended by one vertex in every
//     possible way; a child can only fail through a set that uses the new
//     vertex, so only those sets are checked.
//   - Survivors are reduced to one representative per isomorphism class
//     through canonical labelling.
//   - The first order with no counterexample is the answer.
//
// Packages:
//
//	graph/     — immutable simple graphs with bit-row adjacency
//	subset/    — k-subsets and powersets of vertex lists
//	predicate/ — k-divided, k-sparse, clique & independent predicates + parser
//	fset/      — does a graph have a b-vertex set satisfying f?
//	isograph/  — canonical forms, isomorphism dedupe, graph6 & DOT codecs
//	extremal/  — the level-by-level search engine with metrics & checkpoints
//	catalog/   — BadgerDB frontier store for resumable searches
//	builder/   — cycles, paths, complete & random graphs for tests and checks
//	config/    — YAML run configuration
//	logging/   — slog logger construction
//
// Quick example (R*_1(3,3): no 3 vertices inducing only isolated vertices,
// in the graph or its complement):
//
//	prob := extremal.Problem{
//		F1: predicate.Divided(1), F2: predicate.DividedComplement(1),
//		B1: 3, B2: 3,
//	}
//	res, _ := extremal.Search(ctx, prob)
//	// res.Number == 6, res.Extremal holds one graph: the 5-cycle
//
// The genramsey command (cmd/genramsey) prints the same results in the
// DOT language.
package genramsey
