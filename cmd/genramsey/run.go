package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/genramsey/catalog"
	"github.com/katalvlaran/genramsey/config"
	"github.com/katalvlaran/genramsey/extremal"
	"github.com/katalvlaran/genramsey/graph"
	"github.com/katalvlaran/genramsey/isograph"
	"github.com/katalvlaran/genramsey/logging"
)

// runSearch performs one search and prints it to out in the classic
// layout: heading, optional per-order counts, extremal graphs, summary.
func runSearch(ctx context.Context, out, errOut io.Writer, run config.Run) error {
	prob, err := run.Problem()
	if err != nil {
		return usageError{msg: err.Error()}
	}
	log, err := newLogger(run, errOut)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []extremal.Option{
		extremal.WithWorkers(run.Workers),
		extremal.WithMaxOrder(run.MaxOrder),
		extremal.WithLogger(log),
		extremal.WithMetrics(extremal.NewMetrics(reg)),
	}
	if run.Checkpoint.Enabled() {
		cat, err := openCatalog(run, log)
		if err != nil {
			return err
		}
		defer cat.Close()
		log.Info("checkpoint store open", "run_id", cat.RunID(), "path", run.Checkpoint.Path)
		opts = append(opts, extremal.WithCheckpoint(cat))
	}

	number, base := names(run)
	fmt.Fprintf(out, "Finding %s\n\n", number)
	if !run.Quiet {
		fmt.Fprintln(out, "Order & number of counterexample graphs:")
		opts = append(opts, extremal.WithProgress(func(lvl extremal.Level) {
			fmt.Fprintf(out, "%d %d\n", lvl.Order, lvl.Count)
		}))
	}

	res, err := extremal.Search(ctx, prob, opts...)
	if log.Enabled(ctx, slog.LevelDebug) {
		dumpMetrics(log, reg)
	}
	if err != nil {
		return err
	}

	if !run.Quiet {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%d extremal graph(s):\n\n", len(res.Extremal))
	writeGraphs(out, res.Extremal, base, run.Format)
	fmt.Fprintf(out, "%s = %d\n", number, res.Number)
	fmt.Fprintf(out, "%d extremal graph(s)\n", len(res.Extremal))
	return nil
}

// writeGraphs prints each graph as a DOT block followed by a blank line,
// or as graph6 lines followed by one blank line.
func writeGraphs(out io.Writer, gs []*graph.Graph, base, format string) {
	if format == config.FormatGraph6 {
		for _, g := range gs {
			fmt.Fprintln(out, isograph.Graph6(g))
		}
		if len(gs) > 0 {
			fmt.Fprintln(out)
		}
		return
	}
	for i, g := range gs {
		fmt.Fprintf(out, "%s\n\n", isograph.DOT(g, fmt.Sprintf("%s%d", base, i+1)))
	}
}

func runCheckpoints(ctx context.Context, out io.Writer, run config.Run, forget string) error {
	log, err := newLogger(run, io.Discard)
	if err != nil {
		return err
	}
	cat, err := openCatalog(run, log)
	if err != nil {
		return err
	}
	defer cat.Close()

	if forget != "" {
		return cat.Forget(ctx, forget)
	}
	keys, err := cat.Problems(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(out, k)
	}
	return nil
}

func newLogger(run config.Run, w io.Writer) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(run.Log.Level)
	if err != nil {
		return nil, usageError{msg: err.Error()}
	}
	return logging.New(logging.Config{Level: lvl, Format: run.Log.Format, Writer: w}), nil
}

func openCatalog(run config.Run, log *slog.Logger) (*catalog.Catalog, error) {
	cfg := catalog.DefaultConfig(run.Checkpoint.Path)
	if run.Checkpoint.InMemory {
		cfg = catalog.InMemoryConfig()
	}
	cfg.Logger = log
	return catalog.Open(cfg)
}

// dumpMetrics logs every gathered sample at debug level.
func dumpMetrics(log *slog.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Warn("gather metrics", "err", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				log.Debug("metric", "name", mf.GetName(), "value", m.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				log.Debug("metric", "name", mf.GetName(), "value", m.GetGauge().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				log.Debug("metric", "name", mf.GetName(), "count", h.GetSampleCount(), "sum", h.GetSampleSum())
			}
		}
	}
}
