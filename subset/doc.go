// Package subset enumerates vertex subsets for the search packages.
//
// What:
//
//   - Combinations(n, k): every k-subset of [0, n) in lexicographic order.
//   - Powerset(items): every subset of an ordered sequence, by size then
//     lexicographically, empty set first and full set last.
//   - Mask / Members: conversion between ascending index slices and uint64
//     bit masks (indices must be < 64).
//
// Buffers:
//
//	Yielded slices are scratch buffers reused between iterations. A consumer
//	that retains one must copy it.
//
// Complexity:
//
//   - Combinations: O(k) amortised per subset, C(n, k) subsets.
//   - Powerset: 2^len(items) subsets.
package subset
