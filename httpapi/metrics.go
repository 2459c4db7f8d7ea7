package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/retentionlab/knapsack/knapsack"
)

// Metrics mirrors knapsack.Metrics as Prometheus instruments, exposed at
// /metrics for the optimization dashboard's time-series view. Each Metrics
// owns a private registry rather than registering against the global
// default one, so building more than one Server in a process (as the test
// suite does) never collides on a duplicate collector name.
type Metrics struct {
	registry *prometheus.Registry

	solvesTotal       *prometheus.CounterVec
	nodesExpanded     prometheus.Histogram
	prunedTotal       prometheus.Histogram
	pruningEfficiency prometheus.Histogram
	elapsedSeconds    prometheus.Histogram
}

// NewMetrics builds a Metrics with a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		solvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "knapsack_solves_total",
			Help: "Total number of Solve calls, by result status.",
		}, []string{"status"}),
		nodesExpanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "knapsack_nodes_expanded",
			Help:    "Number of search nodes expanded per Solve call.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		prunedTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "knapsack_pruned_total",
			Help:    "Number of search nodes pruned per Solve call.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pruningEfficiency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "knapsack_pruning_efficiency",
			Help:    "Fraction of encountered nodes pruned per Solve call.",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		elapsedSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "knapsack_solve_elapsed_seconds",
			Help:    "Wall-clock duration of Solve calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(m.solvesTotal, m.nodesExpanded, m.prunedTotal, m.pruningEfficiency, m.elapsedSeconds)

	return m
}

// observeSolve records one Solve result's metrics.
func (m *Metrics) observeSolve(res knapsack.Result) {
	m.solvesTotal.WithLabelValues(string(res.Status)).Inc()
	m.nodesExpanded.Observe(float64(res.Metrics.NodesExpanded))
	m.prunedTotal.Observe(float64(res.Metrics.PrunedTotal))
	m.pruningEfficiency.Observe(res.Metrics.PruningEfficiencyFraction)
	m.elapsedSeconds.Observe(res.Metrics.ElapsedSeconds)
}
