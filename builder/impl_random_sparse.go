// SPDX-License-Identifier: MIT
// Package: genramsey/builder
//
// impl_random_sparse.go — RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Erdős–Rényi G(n, p): each unordered pair {i,j}, i<j, is an edge
//     independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   • Stable trial order: i asc, then j asc with j > i. One draw per pair.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/genramsey/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that appends a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		first, err := addVertices(b, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				if cfg.rng == nil {
					keep = p == probMax
				} else {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = join(b, methodRandomSparse, first+i, first+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
