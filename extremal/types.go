package extremal

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/genramsey/fset"
	"github.com/katalvlaran/genramsey/graph"
)

// Sentinel errors for search execution.
var (
	// ErrNegativeSize is returned when b1 or b2 is negative.
	ErrNegativeSize = errors.New("extremal: negative subset size")

	// ErrInvalidPredicate is returned for a nil or self-invalid predicate.
	ErrInvalidPredicate = errors.New("extremal: invalid predicate")

	// ErrOrderLimit is returned with a partial Result when the search would
	// have to examine an order beyond WithMaxOrder.
	ErrOrderLimit = errors.New("extremal: order limit reached")

	// ErrCheckpoint is returned when the checkpoint store fails, or when a
	// checkpointed problem has a predicate without a stable key.
	ErrCheckpoint = errors.New("extremal: checkpoint failed")
)

// Problem is one generalized Ramsey instance.
type Problem struct {
	F1, F2 fset.Predicate
	B1, B2 int
}

// validator is implemented by predicates that can check themselves.
type validator interface {
	Validate() error
}

// Validate rejects negative sizes and nil or invalid predicates.
func (p Problem) Validate() error {
	if p.B1 < 0 || p.B2 < 0 {
		return fmt.Errorf("Validate: b1=%d b2=%d: %w", p.B1, p.B2, ErrNegativeSize)
	}
	for i, f := range []fset.Predicate{p.F1, p.F2} {
		if f == nil {
			return fmt.Errorf("Validate: f%d is nil: %w", i+1, ErrInvalidPredicate)
		}
		if v, ok := f.(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("Validate: f%d: %v: %w", i+1, err, ErrInvalidPredicate)
			}
		}
	}
	return nil
}

// Key identifies the problem in a checkpoint store. Predicates print
// through fmt; only fmt.Stringer predicates give a key that is stable
// across processes (see keyable).
func (p Problem) Key() string {
	return fmt.Sprintf("%v:%d|%v:%d", p.F1, p.B1, p.F2, p.B2)
}

// keyable rejects predicates whose %v form is not stable, such as a Func,
// which prints as a function address.
func (p Problem) keyable() error {
	for i, f := range []fset.Predicate{p.F1, p.F2} {
		if _, ok := f.(fmt.Stringer); !ok {
			return fmt.Errorf("f%d (%T) has no String method, key would not survive a restart: %w", i+1, f, ErrCheckpoint)
		}
	}
	return nil
}

// Isomorphism supplies the graph-isomorphism services the engine needs.
// With more than one worker, Dedupe is called concurrently.
type Isomorphism interface {
	// AllGraphs yields every labelled graph of order n.
	AllGraphs(n int) (iter.Seq[*graph.Graph], error)
	// Dedupe keeps the first graph of each isomorphism class, in order.
	Dedupe(gs []*graph.Graph) []*graph.Graph
}

// Checkpoint persists finished levels so an interrupted search can resume.
type Checkpoint interface {
	// Save records a finished level and its (deduplicated) frontier.
	Save(ctx context.Context, key string, lvl Level, frontier []*graph.Graph) error
	// Load returns every saved level of key in order, and the frontier of
	// the latest level whose frontier is nonempty.
	Load(ctx context.Context, key string) ([]Level, []*graph.Graph, error)
}

// Level summarises one finished level.
type Level struct {
	// Order of the graphs examined at this level.
	Order int `json:"order"`
	// Count of counterexample graphs kept, one per isomorphism class.
	Count int `json:"count"`
	// Candidates examined (extensions built, or all graphs at level 0).
	Candidates int `json:"candidates"`
	// Survivors before isomorphism reduction.
	Survivors int `json:"survivors"`
}

// Result of a search.
type Result struct {
	// Number is the least order with no counterexample graph.
	Number int
	// Extremal holds one counterexample graph of order Number-1 per
	// isomorphism class; empty when Number is 0.
	Extremal []*graph.Graph
	// Levels lists orders 0..Number with their counts.
	Levels []Level
}
