// Package predicate implements the induced-hereditary vertex-subset
// predicates used to define generalized Ramsey numbers.
//
// A Predicate is a small tagged value {kind, k} evaluated through a single
// Eval(g, s) entry point. It decides a property of the subgraph of g induced
// by the subset s; every predicate here is induced-hereditary: if it holds on
// s it holds on every subset of s.
//
// Kinds:
//
//	divided(k)             every connected component has at most k vertices (k ≥ 1)
//	divided-complement(k)  the same, measured in the complement graph
//	sparse(k)              every vertex has at most k neighbors inside s (k ≥ 0)
//	sparse-complement(k)   every vertex has at most k non-neighbors inside s
//	independent            no two vertices of s are adjacent
//	clique                 every two vertices of s are adjacent
//
// Evaluation never materialises the induced subgraph. Components are explored
// with an array-backed stack and a bit-set visited marker, and the search
// stops as soon as one component grows past k. Complement variants read
// non-adjacency straight from the neighbor masks.
//
// Errors:
//   - ErrShape        k outside the kind's domain (New).
//   - ErrUnknownKind  unrecognised kind or name (New, Parse).
//   - ErrInvalidPredicate  the zero Predicate (Validate).
//   - ErrSyntax       malformed expression (Parse).
//
// Constructors such as Divided(0) panic; New is the error-returning form.
package predicate
