// SPDX-License-Identifier: MIT
// Package: genramsey/builder
//
// Package builder assembles small simple graphs for fixtures, self-tests and
// examples: cycles, paths, complete and empty graphs, stars, wheels, complete
// bipartite graphs and seeded random graphs.
//
// Model:
//
//   - A Constructor appends fresh vertices to a *graph.Builder and joins them.
//     It never touches vertices added before it ran, so composing several
//     constructors in BuildGraph yields their disjoint union.
//   - Options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same constructors, same order and same seed give the same
//     graph.
//
// Errors:
//
//   - ErrTooFewVertices      size parameter below the constructor's minimum.
//   - ErrInvalidProbability  p outside [0,1].
//   - ErrNeedRandSource      stochastic constructor without WithSeed/WithRand.
//   - ErrConstructFailed     nil constructor, or the result would exceed
//     graph.MaxOrder.
//
// Option constructors panic on meaningless input; constructors never panic.
package builder
