// Package isograph supplies the isomorphism services consumed by the
// extremal search: canonical forms, duplicate elimination up to
// isomorphism, enumeration of all labelled graphs of a small order, and
// textual encodings (graph6 and DOT).
//
// Canonical form:
//
// Canonical relabels a graph by individualisation/refinement. The vertex
// partition is refined to an equitable one (cells split by their
// neighbor-count vectors against every cell), then the first non-singleton
// cell is individualised vertex by vertex and the search recurses. Every
// discrete partition is a labeling; the labeling whose relabelled adjacency
// rows are lexicographically largest wins. Vertices of the target cell that
// are twins of one already tried are skipped, since swapping twins is an
// automorphism fixing the partition. Key returns the graph6 string of the
// canonical graph, so two graphs are isomorphic iff their keys are equal.
//
// Dedupe keeps the first graph met in each isomorphism class and preserves
// first-encounter order.
package isograph
