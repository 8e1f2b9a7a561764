package extremal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/genramsey/fset"
	"github.com/katalvlaran/genramsey/graph"
	"github.com/katalvlaran/genramsey/isograph"
	"github.com/katalvlaran/genramsey/subset"
)

// cancelCheckEvery is how many extensions a worker builds between
// context checks.
const cancelCheckEvery = 1024

// Engine runs searches with a fixed isomorphism service and options.
// An Engine holds no per-search state and may run searches concurrently.
type Engine struct {
	iso  Isomorphism
	opts Options
}

// NewEngine returns an Engine using iso for isomorphism services.
// Panics if iso is nil.
func NewEngine(iso Isomorphism, opts ...Option) *Engine {
	if iso == nil {
		panic("extremal: NewEngine: nil Isomorphism")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{iso: iso, opts: o}
}

// Search runs prob with isograph.Default.
func Search(ctx context.Context, prob Problem, opts ...Option) (Result, error) {
	return NewEngine(isograph.Default, opts...).Search(ctx, prob)
}

// Search finds the generalized Ramsey number of prob and its extremal graphs.
//
// With a checkpoint configured, stored levels are replayed (progress is
// reported for each) and the search continues after the last one. Both
// predicates must then implement fmt.Stringer, else ErrCheckpoint.
// With WithMaxOrder(m), a search that would examine order m+1 stops and
// returns the levels so far, the counterexamples of order m as Extremal,
// Number 0 and ErrOrderLimit.
func (e *Engine) Search(ctx context.Context, prob Problem) (Result, error) {
	if err := prob.Validate(); err != nil {
		return Result{}, fmt.Errorf("Search: %w", err)
	}
	if e.opts.Checkpoint != nil {
		if err := prob.keyable(); err != nil {
			return Result{}, fmt.Errorf("Search: %w", err)
		}
	}
	log := e.opts.Logger.With("problem", prob.Key())
	start := time.Now()

	var (
		res      Result
		frontier []*graph.Graph
		order    int
	)
	resumed, done, err := e.resume(ctx, prob, &res, &frontier)
	if err != nil {
		return Result{}, err
	}
	switch {
	case done:
		log.Info("search restored", "number", res.Number, "extremal", len(res.Extremal))
		return res, nil
	case resumed:
		order = res.Levels[len(res.Levels)-1].Order + 1
		log.Info("search resumed", "order", order, "frontier", len(frontier))
	default:
		log.Info("search started", "workers", e.opts.Workers, "max_order", e.opts.MaxOrder)
		t0 := time.Now()
		var lvl Level
		frontier, lvl, err = e.Initial(prob)
		if err != nil {
			return Result{}, fmt.Errorf("Search: %w", err)
		}
		if err = e.finish(ctx, prob, &res, lvl, frontier, time.Since(t0)); err != nil {
			return res, err
		}
		if len(frontier) == 0 {
			log.Info("search finished", "number", 0, "extremal", 0, "took", time.Since(start))
			return res, nil
		}
		order = 1
	}

	for {
		if e.opts.MaxOrder > 0 && order > e.opts.MaxOrder {
			res.Extremal = frontier
			log.Warn("order limit reached", "max_order", e.opts.MaxOrder, "frontier", len(frontier))
			return res, fmt.Errorf("Search: order %d > %d: %w", order, e.opts.MaxOrder, ErrOrderLimit)
		}
		t0 := time.Now()
		next, lvl, err := e.Next(ctx, prob, order, frontier)
		if err != nil {
			return res, fmt.Errorf("Search: %w", err)
		}
		if err = e.finish(ctx, prob, &res, lvl, next, time.Since(t0)); err != nil {
			return res, err
		}
		if len(next) == 0 {
			res.Number, res.Extremal = order, frontier
			log.Info("search finished", "number", order, "extremal", len(frontier), "took", time.Since(start))
			return res, nil
		}
		frontier = next
		order++
	}
}

// finish records a level in res and reports it to every observer.
func (e *Engine) finish(ctx context.Context, prob Problem, res *Result, lvl Level, frontier []*graph.Graph, took time.Duration) error {
	res.Levels = append(res.Levels, lvl)
	e.opts.Logger.Debug("level done",
		"order", lvl.Order, "count", lvl.Count,
		"candidates", lvl.Candidates, "survivors", lvl.Survivors, "took", took)
	e.opts.Metrics.observe(lvl, took)
	if cp := e.opts.Checkpoint; cp != nil {
		if err := cp.Save(ctx, prob.Key(), lvl, frontier); err != nil {
			return fmt.Errorf("Search: save order %d: %v: %w", lvl.Order, err, ErrCheckpoint)
		}
	}
	e.opts.Progress(lvl)
	return nil
}

// resume replays stored levels into res. It reports whether anything was
// restored and whether the stored run had already finished.
func (e *Engine) resume(ctx context.Context, prob Problem, res *Result, frontier *[]*graph.Graph) (resumed, done bool, err error) {
	cp := e.opts.Checkpoint
	if cp == nil {
		return false, false, nil
	}
	levels, stored, err := cp.Load(ctx, prob.Key())
	if err != nil {
		return false, false, fmt.Errorf("Search: load: %v: %w", err, ErrCheckpoint)
	}
	if len(levels) == 0 {
		return false, false, nil
	}
	for _, lvl := range levels {
		res.Levels = append(res.Levels, lvl)
		e.opts.Progress(lvl)
	}
	last := levels[len(levels)-1]
	if last.Count == 0 {
		res.Number = last.Order
		if last.Order > 0 {
			res.Extremal = stored
		}
		return true, true, nil
	}
	*frontier = stored
	return true, false, nil
}

// Initial evaluates level 0: every graph of order 0 with no b1-subset
// satisfying f1 and no b2-subset satisfying f2, one per class.
func (e *Engine) Initial(prob Problem) ([]*graph.Graph, Level, error) {
	all, err := e.iso.AllGraphs(0)
	if err != nil {
		return nil, Level{}, fmt.Errorf("Initial: %w", err)
	}
	lvl := Level{Order: 0}
	var kept []*graph.Graph
	for g := range all {
		lvl.Candidates++
		if !fset.Exists(prob.F1, prob.B1, g) && !fset.Exists(prob.F2, prob.B2, g) {
			kept = append(kept, g)
		}
	}
	lvl.Survivors = len(kept)
	kept = e.iso.Dedupe(kept)
	lvl.Count = len(kept)
	return kept, lvl, nil
}

// Next builds the order-n frontier from frontier, the counterexamples of
// order n-1. Extensions are kept in parent order, then subset order.
func (e *Engine) Next(ctx context.Context, prob Problem, n int, frontier []*graph.Graph) ([]*graph.Graph, Level, error) {
	type expansion struct {
		kept       []*graph.Graph
		candidates int
		survivors  int
	}
	results := make([]expansion, len(frontier))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.opts.Workers)
	for i, parent := range frontier {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			kept, candidates, survivors, err := e.expand(egCtx, prob, parent)
			if err != nil {
				return err
			}
			results[i] = expansion{kept: kept, candidates: candidates, survivors: survivors}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, Level{}, fmt.Errorf("Next: order %d: %w", n, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, Level{}, fmt.Errorf("Next: order %d: %w", n, err)
	}

	lvl := Level{Order: n}
	var all []*graph.Graph
	for _, r := range results {
		lvl.Candidates += r.candidates
		lvl.Survivors += r.survivors
		all = append(all, r.kept...)
	}
	next := e.iso.Dedupe(all)
	lvl.Count = len(next)
	return next, lvl, nil
}

// expand tries every one-vertex extension of parent. Survivors are reduced
// per parent already; the global pass in Next then keeps the same first
// representatives as a single pass over all survivors would.
func (e *Engine) expand(ctx context.Context, prob Problem, parent *graph.Graph) ([]*graph.Graph, int, int, error) {
	var (
		kept       []*graph.Graph
		candidates int
	)
	vertices := make([]int, parent.Order())
	for i := range vertices {
		vertices[i] = i
	}
	for nbrs := range subset.Powerset(vertices) {
		candidates++
		if candidates%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, 0, err
			}
		}
		child, err := parent.Extend(nbrs)
		if err != nil {
			return nil, 0, 0, err
		}
		if !fset.ExistsWithVertex(prob.F1, prob.B1, child) && !fset.ExistsWithVertex(prob.F2, prob.B2, child) {
			kept = append(kept, child)
		}
	}
	survivors := len(kept)
	return e.iso.Dedupe(kept), candidates, survivors, nil
}
