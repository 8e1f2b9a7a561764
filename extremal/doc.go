// Package extremal computes generalized Ramsey numbers and their extremal
// graphs by level-by-level extension.
//
// What:
//
//	Given predicates f1, f2 and sizes b1, b2, a counterexample graph is one
//	with no b1-subset satisfying f1 and no b2-subset satisfying f2. Search
//	returns the least order n with no counterexample graph and one
//	representative per isomorphism class of counterexample graphs of
//	order n-1 (the extremal graphs).
//
// How:
//
//   - Level 0 filters every graph of order 0 with fset.Exists.
//   - Level n extends each parent of the previous frontier by a new vertex
//     joined to every subset of the parent's vertices, keeps the
//     extensions for which fset.ExistsWithVertex fails for both
//     predicates, then keeps one graph per isomorphism class.
//   - The first empty frontier at order n ends the search.
//
// Extension only needs subsets through the new vertex because both
// predicates are induced-hereditary and the parent is already a
// counterexample.
//
// Options:
//
//   - WithWorkers   expand parents concurrently; output is identical to a
//     sequential run because results are re-assembled in parent order.
//   - WithMaxOrder  stop with ErrOrderLimit instead of running unbounded.
//   - WithProgress  observe every finished level.
//   - WithLogger, WithMetrics, WithCheckpoint.
//
// Complexity: exponential in the answer; intended for small orders.
package extremal
