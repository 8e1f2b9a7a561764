// SPDX-License-Identifier: MIT
// Package: genramsey/builder
//
// api.go — public entry point and constructor type.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Creates the builder,
//     resolves cfg, runs cons in order, snapshots the result.
//   • Every constructor appends its own block of vertices; composition is a
//     disjoint union in call order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/genramsey/graph"
)

// Constructor appends a topology to b using the resolved builderConfig.
// Constructors MUST validate parameters before adding anything and return
// sentinel errors instead of panicking.
type Constructor func(b *graph.Builder, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor to a fresh builder in
// order and returns the resulting graph.
//
// Errors: constructor errors are wrapped once with "BuildGraph: %w".
// Complexity: Σ cost of the constructors.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	b, _ := graph.NewBuilder(0)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return b.Build(), nil
}

// MustBuild is BuildGraph for fixtures; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *graph.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}

// addVertices appends n isolated vertices and returns the index of the first.
func addVertices(b *graph.Builder, method string, n int) (int, error) {
	first := b.Order()
	if first+n > graph.MaxOrder {
		return 0, fmt.Errorf("%s: order %d+%d > %d: %w", method, first, n, graph.MaxOrder, ErrConstructFailed)
	}
	for i := 0; i < n; i++ {
		if _, err := b.AddVertex(); err != nil {
			return 0, fmt.Errorf("%s: AddVertex: %w", method, err)
		}
	}
	return first, nil
}

// join adds the edge u~v, wrapping failures with method context.
func join(b *graph.Builder, method string, u, v int) error {
	if err := b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}
	return nil
}
