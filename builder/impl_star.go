// SPDX-License-Identifier: MIT
// Package: genramsey/builder
//
// impl_star.go — Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star:  n ≥ 2; the hub is the first appended vertex, leaves follow.
//   • Wheel: n ≥ 4; the hub is the first appended vertex, the remaining
//     n-1 vertices form a cycle and are all joined to the hub.
//
// Complexity: Star O(n) edges; Wheel O(2n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/genramsey/graph"
)

const (
	methodStar    = "Star"
	minStarNodes  = 2
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Star returns a Constructor that appends a star with n-1 leaves.
func Star(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := addVertices(b, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = join(b, methodStar, hub, hub+i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel returns a Constructor that appends W_n: a hub over C_{n-1}.
func Wheel(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub, err := addVertices(b, methodWheel, n)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := hub+1+i, hub+1+(i+1)%rim
			if err = join(b, methodWheel, u, v); err != nil {
				return err
			}
			if err = join(b, methodWheel, hub, u); err != nil {
				return err
			}
		}
		return nil
	}
}
