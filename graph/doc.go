// Package graph defines the immutable simple graph used throughout genramsey.
//
// What:
//
//   - Graph: vertex set is the contiguous range [0, n); adjacency is kept per
//     vertex as an ascending, duplicate-free neighbor list together with a
//     uint64 bit row (bit u of row v set iff u~v).
//   - Builder: a mutable edge accumulator that snapshots into a Graph.
//   - Extend: grows a graph by one vertex joined to a given neighbor set,
//     producing a NEW value. The receiver is never touched, so graphs of an
//     earlier search level stay valid as templates for the next one.
//
// Invariants:
//
//   - symmetry: u ∈ N(v) ⇔ v ∈ N(u); no vertex lists itself.
//   - immutability: no exported method mutates a Graph after construction;
//     neighbor slices returned by Neighbors are read-only views.
//   - order ≤ MaxOrder (64), which is far beyond what exhaustive search can
//     reach and lets every vertex subset be represented as a single uint64.
//
// Complexity:
//
//   - HasEdge, Degree, NeighborMask: O(1).
//   - Extend: O(n + deg) time; untouched neighbor lists are shared.
//   - Complement, Permute: O(n²) worst case.
//
// Errors:
//
//   - ErrNegativeOrder, ErrOrderTooLarge: order outside [0, MaxOrder].
//   - ErrVertexRange: a vertex index outside [0, n).
//   - ErrSelfLoop, ErrAsymmetric, ErrDuplicateNeighbor: malformed adjacency.
//   - ErrBadPermutation: Permute argument is not a permutation of [0, n).
package graph
