// SPDX-License-Identifier: MIT
// Package: genramsey/builder
//
// impl_cycle.go — Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; edges i~(i+1)%n for i = 0..n-1.
//   • Path:  n ≥ 2; edges i~i+1 for i = 0..n-2.
//   • Indices are relative to the first vertex the constructor appends.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/genramsey/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
	methodPath    = "Path"
	minPathNodes  = 2
)

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		first, err := addVertices(b, methodCycle, n)
		if err != nil {
			return err
		}
		// ring step i -> i+1, closing n-1 -> 0
		for i := 0; i < n; i++ {
			if err = join(b, methodCycle, first+i, first+(i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		first, err := addVertices(b, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = join(b, methodPath, first+i, first+i+1); err != nil {
				return err
			}
		}
		return nil
	}
}
