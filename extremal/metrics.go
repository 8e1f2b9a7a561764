package extremal

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes search statistics as Prometheus collectors.
type Metrics struct {
	Candidates   prometheus.Counter
	Survivors    prometheus.Counter
	Frontier     prometheus.Gauge
	Order        prometheus.Gauge
	LevelSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Candidates: f.NewCounter(prometheus.CounterOpts{
			Name: "genramsey_candidates_total",
			Help: "Candidate graphs examined",
		}),
		Survivors: f.NewCounter(prometheus.CounterOpts{
			Name: "genramsey_survivors_total",
			Help: "Counterexample graphs found before isomorphism reduction",
		}),
		Frontier: f.NewGauge(prometheus.GaugeOpts{
			Name: "genramsey_frontier_size",
			Help: "Counterexample classes at the latest finished order",
		}),
		Order: f.NewGauge(prometheus.GaugeOpts{
			Name: "genramsey_order",
			Help: "Latest finished order",
		}),
		LevelSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "genramsey_level_duration_seconds",
			Help:    "Time to finish one level",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 100},
		}),
	}
}

func (m *Metrics) observe(lvl Level, took time.Duration) {
	if m == nil {
		return
	}
	m.Candidates.Add(float64(lvl.Candidates))
	m.Survivors.Add(float64(lvl.Survivors))
	m.Frontier.Set(float64(lvl.Count))
	m.Order.Set(float64(lvl.Order))
	m.LevelSeconds.Observe(took.Seconds())
}
