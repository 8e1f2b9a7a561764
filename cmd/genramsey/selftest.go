package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/genramsey/builder"
	"github.com/katalvlaran/genramsey/extremal"
	"github.com/katalvlaran/genramsey/graph"
	"github.com/katalvlaran/genramsey/isograph"
	"github.com/katalvlaran/genramsey/predicate"
)

var errSelfTest = errors.New("self-test failed")

// knownValue is a published number with its extremal graphs, when they
// are few enough to list.
type knownValue struct {
	name     string
	prob     extremal.Problem
	number   int
	extremal []builder.Constructor
	classes  int
}

func knownValues() []knownValue {
	return []knownValue{
		{
			name:     "R*_1(2,2)",
			prob:     extremal.Problem{F1: predicate.Divided(1), F2: predicate.DividedComplement(1), B1: 2, B2: 2},
			number:   2,
			extremal: []builder.Constructor{builder.Complete(1)},
		},
		{
			name:     "R*_1(3,3)",
			prob:     extremal.Problem{F1: predicate.Divided(1), F2: predicate.DividedComplement(1), B1: 3, B2: 3},
			number:   6,
			extremal: []builder.Constructor{builder.Cycle(5)},
		},
		{
			name:     "R_0(3,3)",
			prob:     extremal.Problem{F1: predicate.Sparse(0), F2: predicate.SparseComplement(0), B1: 3, B2: 3},
			number:   6,
			extremal: []builder.Constructor{builder.Cycle(5)},
		},
		{
			name:   "R*_1(0,3)",
			prob:   extremal.Problem{F1: predicate.Divided(1), F2: predicate.DividedComplement(1), B1: 0, B2: 3},
			number: 0,
		},
		{
			name:    "R(3,4)",
			prob:    extremal.Problem{F1: predicate.Clique(), F2: predicate.Independent(), B1: 3, B2: 4},
			number:  9,
			classes: 3,
		},
	}
}

// runSelfTest recomputes every known value and prints one line per check.
func runSelfTest(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Running self-tests")
	failed := 0
	for _, kv := range knownValues() {
		if err := kv.check(ctx); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", kv.name, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s = %d\n", kv.name, kv.number)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(knownValues()), errSelfTest)
	}
	return nil
}

func (kv knownValue) check(ctx context.Context) error {
	res, err := extremal.Search(ctx, kv.prob)
	if err != nil {
		return err
	}
	if res.Number != kv.number {
		return fmt.Errorf("got %d, want %d", res.Number, kv.number)
	}
	want := kv.classes
	if kv.extremal != nil {
		want = len(kv.extremal)
	}
	if len(res.Extremal) != want {
		return fmt.Errorf("got %d extremal graphs, want %d", len(res.Extremal), want)
	}
	for i, cons := range kv.extremal {
		g, err := builder.BuildGraph(nil, cons)
		if err != nil {
			return err
		}
		if !containsIsomorph(res.Extremal, g) {
			return fmt.Errorf("extremal graph %d missing", i+1)
		}
	}
	return nil
}

func containsIsomorph(gs []*graph.Graph, g *graph.Graph) bool {
	for _, h := range gs {
		if isograph.Isomorphic(g, h) {
			return true
		}
	}
	return false
}
