// SPDX-License-Identifier: MIT
// Package: genramsey/builder
//
// impl_complete.go — Complete(n), Empty(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   • Complete: n ≥ 1; every pair i<j joined, i asc then j asc.
//   • Empty:    n ≥ 0; n isolated vertices (useful for padding a union).
//   • CompleteBipartite: n1, n2 ≥ 1; left block first, then right block;
//     every left vertex joined to every right vertex.
//
// Complexity: Complete O(n²) edges; CompleteBipartite O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/genramsey/graph"
)

const (
	methodComplete          = "Complete"
	minCompleteNodes        = 1
	methodEmpty             = "Empty"
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionNodes       = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		first, err := addVertices(b, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = join(b, methodComplete, first+i, first+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Empty returns a Constructor that appends n isolated vertices.
func Empty(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < min=0: %w", methodEmpty, n, ErrTooFewVertices)
		}
		_, err := addVertices(b, methodEmpty, n)
		return err
	}
}

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}
		first, err := addVertices(b, methodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = join(b, methodCompleteBipartite, first+i, first+n1+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
